package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func fontDir(t *testing.T) string {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Noto_Sans", "NotoSans-Italic.otf"))
	touch(t, filepath.Join(dir, "README.txt"))
	return dir
}

func TestScanDir(t *testing.T) {
	dir := fontDir(t)
	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Noto_Sans/NotoSans-Italic.otf"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindFontIn(t *testing.T) {
	dir := fontDir(t)
	dirs := []string{filepath.Join(dir, "missing"), dir}

	rel, full, err := FindFontIn(dirs, "inter")
	require.NoError(t, err)
	assert.Equal(t, "Inter/Inter-Regular.ttf", rel, "regular is preferred")
	assert.FileExists(t, full)

	rel, _, err = FindFontIn(dirs, "Noto Sans")
	require.NoError(t, err)
	assert.Equal(t, "Noto_Sans/NotoSans-Italic.otf", rel)

	rel, _, err = FindFontIn(dirs, "")
	require.NoError(t, err)
	assert.Equal(t, "Inter/Inter-Regular.ttf", rel)

	_, _, err = FindFontIn(dirs, "Comic")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
