// Package art renders card images as ANSI half-block art for the terminal.
package art

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// Default art size in terminal cells
const (
	DefaultWidth  = 32
	DefaultHeight = 24
)

// Load returns ANSI art for an image, generating it into cacheDir on first
// use. Cache entries are keyed by image path and modification time.
func Load(imagePath, cacheDir string, width, height int) (string, error) {
	info, err := os.Stat(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to stat image: %w", err)
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	key := fmt.Sprintf("%s|%d|%dx%d", imagePath, info.ModTime().UnixNano(), width, height)
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	ansiArt, err := Generate(imagePath, width, height)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(cachePath, []byte(ansiArt), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to file: %w", err)
	}

	return ansiArt, nil
}

// Generate converts an image file to ANSI art
func Generate(imagePath string, width, height int) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img, width, height), nil
}

// FromImage converts an image to ANSI art, one upper half block per cell
// with the top pixels as foreground and the bottom pixels as background
func FromImage(img image.Image, width, height int) string {
	// Doubled for half-block characters
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(colorAt(resized, x, y))
			col2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			fg := toRGBA(average(col1, col2))
			bg := toRGBA(average(col3, col4))

			fmt.Fprintf(&buffer, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
				fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the color at a specific coordinate, black when out of bounds
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// Width returns the visible width of the widest line
func Width(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := len([]rune(Strip(line))); w > widest {
			widest = w
		}
	}
	return widest
}
