package fileenum

import (
	"fmt"
	"os"
	"os/user"
	"strings"
)

// ExpandHome replaces a leading "~" or "~name" with the corresponding
// user's home directory. If the pattern does not begin with "~", it is
// returned unchanged. A bare "~" (or "~/...") expands to the current
// user's home directory; "~name" (or "~name/...") looks up that specific
// user.
func ExpandHome(pattern string) (string, error) {
	if !strings.HasPrefix(pattern, "~") {
		return pattern, nil
	}

	rest := pattern[1:]
	end := strings.IndexAny(rest, `/\`)
	var name, tail string
	if end == -1 {
		name = rest
	} else {
		name = rest[:end]
		tail = rest[end:]
	}

	var home string
	if name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~: %w", err)
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return "", fmt.Errorf("expanding ~%s: %w", name, err)
		}
		home = u.HomeDir
	}

	return home + tail, nil
}
