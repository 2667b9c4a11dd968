package fileenum

import "unicode"

// Matches compares name against a "*"/"?" glob pattern, case-insensitively.
// "*" matches any run of characters (including none); "?" matches exactly
// one character. It does not implement "**", character classes, or
// escapes — those are handled one layer up, by the pattern expander.
//
// The algorithm is a classic backtrack-free greedy glob matcher: adjacent
// runs of "*"/"?" collapse, and once a "*" is hit, name is advanced to the
// next occurrence of the literal that follows the run.
func Matches(name, pattern string) bool {
	fileRunes := []rune(name)
	wildRunes := []rune(pattern)

	fi, wi := 0, 0

	for fi < len(fileRunes) && wi < len(wildRunes) {
		compareFile := unicode.ToUpper(fileRunes[fi])
		compareWild := unicode.ToUpper(wildRunes[wi])

		fi++
		wi++

		switch {
		case compareWild == '?':
			// Matches any single character; already advanced both.

		case compareWild == '*':
			// The '*' may match an empty run, so the scan below starts at
			// the name character just compared against it.
			fi--

			// Collapse repeated wildcards.
			for wi < len(wildRunes) {
				compareWild = unicode.ToUpper(wildRunes[wi])
				if compareWild != '*' && compareWild != '?' {
					break
				}
				wi++
			}

			// Entirely wildcards from here: any remainder matches.
			if wi == len(wildRunes) {
				return true
			}

			// Scan forward in name for the next literal after the run.
			for fi < len(fileRunes) {
				compareFile = unicode.ToUpper(fileRunes[fi])
				if compareFile == compareWild {
					break
				}
				fi++
			}

			if fi == len(fileRunes) {
				return false
			}

		default:
			if compareFile != compareWild {
				return false
			}
		}
	}

	// Skip over any trailing run of wildcards in the pattern.
	for wi < len(wildRunes) {
		compareWild := unicode.ToUpper(wildRunes[wi])
		if compareWild != '*' && compareWild != '?' {
			break
		}
		wi++
	}

	return fi == len(fileRunes) && wi == len(wildRunes)
}
