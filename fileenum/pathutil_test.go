package fileenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDriveLetterWithColon(t *testing.T) {
	assert.True(t, isDriveLetterWithColon("C:"))
	assert.True(t, isDriveLetterWithColon("z:"))
	assert.False(t, isDriveLetterWithColon("C"))
	assert.False(t, isDriveLetterWithColon("CC:"))
	assert.False(t, isDriveLetterWithColon("1:"))
}

func TestIsDriveLetterWithColonAndSlash(t *testing.T) {
	assert.True(t, isDriveLetterWithColonAndSlash(`C:\`))
	assert.True(t, isDriveLetterWithColonAndSlash(`C:/`))
	assert.False(t, isDriveLetterWithColonAndSlash(`C:`))
	assert.False(t, isDriveLetterWithColonAndSlash(`C:\x`))
}

func TestIsPrefixedDriveLetterWithColonAndSlash(t *testing.T) {
	assert.True(t, isPrefixedDriveLetterWithColonAndSlash(`\\?\C:\`))
	assert.False(t, isPrefixedDriveLetterWithColonAndSlash(`\\?\C:`))
	assert.False(t, isPrefixedDriveLetterWithColonAndSlash(`C:\`))
}

func TestFinalComponent(t *testing.T) {
	assert.Equal(t, "b.txt", finalComponent("/a/b.txt"))
	assert.Equal(t, "a", finalComponent("/a"))
	assert.Equal(t, "a", finalComponent("/a/"))
	assert.Equal(t, "", finalComponent("/"))
}

func TestDirExists(t *testing.T) {
	tmp := t.TempDir()
	assert.True(t, dirExists(tmp))
	assert.False(t, dirExists(tmp+"/does-not-exist"))
}

func TestIsFullUNCPrefixed(t *testing.T) {
	assert.True(t, isFullUNCPrefixed(`\\?\UNC\srv\share`))
	assert.True(t, isFullUNCPrefixed(`\\?\UNC\srv\share\dir\file.txt`))
	assert.False(t, isFullUNCPrefixed(`\\?\C:\a`))
	assert.False(t, isFullUNCPrefixed(`\\srv\share`))
}

func TestIsVolumeRoot(t *testing.T) {
	assert.True(t, isVolumeRoot(`C:\`))
	assert.True(t, isVolumeRoot(`\\?\C:\`))
	assert.True(t, isVolumeRoot(`\\?\UNC\srv\share`))
	assert.False(t, isVolumeRoot(`\\?\UNC\srv\share\dir`))
	assert.False(t, isVolumeRoot(`C:\a`))
}

func TestNormalizeSeparators(t *testing.T) {
	assert.Equal(t, "a/b/c", normalizeSeparators(`a\b\c`))
	assert.Equal(t, "a/b/c", normalizeSeparators("a/b/c"))
}
