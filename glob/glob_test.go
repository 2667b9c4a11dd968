package glob

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	for _, name := range []string{"a.txt", "b.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}
	for _, name := range []string{"c.txt", "d.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "sub", name), []byte("x"), 0o644))
	}
	return root
}

func TestExpandDirectoryRecursesByDefault(t *testing.T) {
	root := writeTree(t)

	got, err := Expand(root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.md"),
		filepath.Join(root, "sub", "c.txt"),
		filepath.Join(root, "sub", "d.md"),
	}
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestExpandTrailingSlashListsOneLevelOnly(t *testing.T) {
	root := writeTree(t)

	got, err := Expand(root + "/")
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.md"),
	}
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestExpandRegularFileReturnsItself(t *testing.T) {
	root := writeTree(t)
	file := filepath.Join(root, "a.txt")

	got, err := Expand(file)
	require.NoError(t, err)
	assert.Equal(t, []string{file}, got)
}

func TestExpandGlobPattern(t *testing.T) {
	root := writeTree(t)

	got, err := Expand(filepath.Join(root, "*.md"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "b.md")}, got)
}

func TestExpandDoubleStarRecursesAllSubdirectories(t *testing.T) {
	root := writeTree(t)

	got, err := Expand(filepath.Join(root, "**", "*.md"))
	require.NoError(t, err)

	// doublestar's "**" matches zero or more directories, so this also
	// reaches b.md directly under root, not only sub/d.md.
	want := []string{
		filepath.Join(root, "b.md"),
		filepath.Join(root, "sub", "d.md"),
	}
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestExpandPrefixMatchesFilesAndWalksDirectories(t *testing.T) {
	root := writeTree(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "subset"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "subset", "e.txt"), []byte("x"), 0o644))

	got, err := Expand(filepath.Join(root, "su"))
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "sub", "c.txt"),
		filepath.Join(root, "sub", "d.md"),
		filepath.Join(root, "subset", "e.txt"),
	}
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestExpandNonexistentPrefixReturnsEmpty(t *testing.T) {
	root := writeTree(t)

	got, err := Expand(filepath.Join(root, "nomatch"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContainsMeta(t *testing.T) {
	cases := map[string]bool{
		"plain":     false,
		"a.txt":     false,
		"*.txt":     true,
		"file?.txt": true,
		"[ab].txt":  true,
		"{a,b}.txt": true,
		"**/x":      true,
	}
	for input, want := range cases {
		assert.Equal(t, want, containsMeta(input), "for %q", input)
	}
}

func TestSplitPatternSeparatesStaticBaseFromGlob(t *testing.T) {
	base, pattern := splitPattern("/a/b/*.txt")
	assert.Equal(t, "/a/b", base)
	assert.Equal(t, "*.txt", pattern)

	base, pattern = splitPattern("/a/**/b/*.txt")
	assert.Equal(t, "/a", base)
	assert.Equal(t, filepath.Join("**", "b", "*.txt"), pattern)

	base, pattern = splitPattern("/a/b/c")
	assert.Equal(t, "/a/b", base)
	assert.Equal(t, "c", pattern)
}

func TestIsIncludableFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	dir := filepath.Join(root, "d")
	require.NoError(t, os.Mkdir(dir, 0o755))

	fileInfo, err := os.Lstat(file)
	require.NoError(t, err)
	assert.True(t, isIncludableFile(file, fileInfo.Mode()))

	dirInfo, err := os.Lstat(dir)
	require.NoError(t, err)
	assert.False(t, isIncludableFile(dir, dirInfo.Mode()))
}
