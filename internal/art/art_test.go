package art

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestFromImage(t *testing.T) {
	out := FromImage(solidImage(color.RGBA{255, 0, 0, 255}), 4, 3)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("▀", 4), Strip(line))
		assert.Contains(t, line, "\x1b[38;2;255;0;0m")
	}
	assert.Equal(t, 4, Width(out))
}

func TestLoadCachesArt(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "card.png")
	writePNG(t, imgPath, solidImage(color.RGBA{0, 0, 255, 255}))
	cacheDir := filepath.Join(dir, "cache")

	first, err := Load(imgPath, cacheDir, 2, 2)
	require.NoError(t, err)

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	second, err := Load(imgPath, cacheDir, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.png"), dir, 2, 2)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = Load(bad, filepath.Join(dir, "cache"), 2, 2)
	assert.ErrorContains(t, err, "failed to decode image")
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "abc", Strip("\x1b[31mabc\x1b[0m"))
	assert.Equal(t, "plain", Strip("plain"))
}
