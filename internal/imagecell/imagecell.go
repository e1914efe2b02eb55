// Package imagecell renders image files as half-block ANSI art sized
// for a terminal cell grid.
package imagecell

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

// Render decodes the image at path and returns one string per
// terminal row, fitted inside width x height cells. Each cell packs
// two pixel rows into a U+2580 upper half block.
func Render(path string, width, height int) ([]string, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image cell needs a positive size, got %dx%d", width, height)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}

	fitted := imaging.Fit(img, width, height*2, imaging.Lanczos)
	b := fitted.Bounds()
	w, h := b.Dx(), b.Dy()

	rows := make([]string, 0, (h+1)/2)
	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		sb.Reset()
		for x := 0; x < w; x++ {
			upper := hexAt(fitted, b.Min.X+x, b.Min.Y+y)
			lower := upper
			if y+1 < h {
				lower = hexAt(fitted, b.Min.X+x, b.Min.Y+y+1)
			}
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(upper)).
				Background(lipgloss.Color(lower)).
				Render("▀")
			sb.WriteString(cell)
		}
		rows = append(rows, sb.String())
	}
	return rows, nil
}

func hexAt(img image.Image, x, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
