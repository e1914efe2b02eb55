package views

import (
	"strings"

	"brochure/internal/domain"
)

// slideRows is the height of the hero slide strip in lines
const slideRows = 5

// ComposeSlides lays the slides onto a single width-wide canvas.
// Each slide is a block of rune rows; slide i starts at column
// offsets[i]*width/100 and is clipped to the canvas, slides fully
// outside are skipped. The result is a pure function of the offsets,
// which are themselves a pure function of the carousel index.
func ComposeSlides(slides [][][]rune, offsets []int, width, rows int) []string {
	canvas := make([][]rune, rows)
	for r := range canvas {
		canvas[r] = []rune(strings.Repeat(" ", width))
	}

	for i, slide := range slides {
		if i >= len(offsets) {
			break
		}
		x := offsets[i] * width / 100
		if x <= -width || x >= width {
			continue
		}
		for r := 0; r < rows && r < len(slide); r++ {
			for c, ch := range slide[r] {
				col := x + c
				if col < 0 || col >= width {
					continue
				}
				canvas[r][col] = ch
			}
		}
	}

	lines := make([]string, rows)
	for r := range canvas {
		lines[r] = string(canvas[r])
	}
	return lines
}

// SlideContent renders one slide as plain centered runes, width wide
// and slideRows tall.
func SlideContent(slide domain.Slide, width int) [][]rune {
	rows := [][]rune{
		[]rune(strings.Repeat(" ", width)),
		centerRunes(slide.Title, width),
		[]rune(strings.Repeat(" ", width)),
		centerRunes(slide.Body, width),
		[]rune(strings.Repeat(" ", width)),
	}
	return rows
}

func centerRunes(s string, width int) []rune {
	r := []rune(s)
	if len(r) > width {
		r = r[:width]
	}
	pad := (width - len(r)) / 2
	out := make([]rune, 0, width)
	out = append(out, []rune(strings.Repeat(" ", pad))...)
	out = append(out, r...)
	for len(out) < width {
		out = append(out, ' ')
	}
	return out
}

// renderIndicators builds the dot row with prev/next arrows and
// registers a hit span per control on row y. Clicks between the dots
// land on no span and are ignored.
func (r *Renderer) renderIndicators(count, active, width, y int, hits *HitMap) string {
	// plain layout first so the hit columns match visible columns
	inner := count*2 - 1 // dots with single spaces between
	total := 2 + 2 + inner + 2 + 2
	left := (width - total) / 2
	if left < 0 {
		left = 0
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", left))
	x := left

	sb.WriteString(r.styles.ArrowButton.Render("‹"))
	hits.Add(y, x, x, HitTarget{Kind: HitPrevButton})
	x++

	sb.WriteString("  ")
	x += 2

	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(" ")
			x++
		}
		if i == active {
			sb.WriteString(r.styles.DotActive.Render("●"))
		} else {
			sb.WriteString(r.styles.DotIdle.Render("○"))
		}
		hits.Add(y, x, x, HitTarget{Kind: HitIndicator, Index: i})
		x++
	}

	sb.WriteString("  ")
	x += 2

	sb.WriteString(r.styles.ArrowButton.Render("›"))
	hits.Add(y, x, x, HitTarget{Kind: HitNextButton})

	return sb.String()
}
