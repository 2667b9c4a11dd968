package fileenum

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
}

func collectNames(t *testing.T, pattern string, flags MatchFlags) []string {
	t.Helper()
	var got []string
	ok := ForEachFile(pattern, flags, 0, func(fullPath string, rec FindRecord, depth int, ctx any) bool {
		got = append(got, rec.Name)
		return true
	}, nil, nil)
	require.True(t, ok)
	sort.Strings(got)
	return got
}

func TestForEachFileBraceExpansion(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt", "c.txt", "d.txt")

	got := collectNames(t, filepath.Join(dir, "{a,b,c}.txt"), ReturnFiles)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, got)
}

func TestForEachFileNestedBraceExpansion(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a1.txt", "a2.txt", "b1.txt", "b2.txt")

	got := collectNames(t, filepath.Join(dir, "{a,b}{1,2}.txt"), ReturnFiles)
	assert.Equal(t, []string{"a1.txt", "a2.txt", "b1.txt", "b2.txt"}, got)
}

func TestForEachFileBracketExpansion(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt", "c.txt")

	got := collectNames(t, filepath.Join(dir, "[ab].txt"), ReturnFiles)
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)
}

func TestForEachFileUnmatchedBraceIsLiteral(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	got := collectNames(t, filepath.Join(dir, "{a.txt"), ReturnFiles)
	assert.Empty(t, got)
}

func TestForEachFileFileURLPrefixIsStripped(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	got := collectNames(t, "file:///"+filepath.Join(dir, "a.txt"), ReturnFiles)
	assert.Equal(t, []string{"a.txt"}, got)
}
