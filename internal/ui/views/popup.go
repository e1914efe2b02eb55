package views

import (
	"regexp"
	"strings"
)

// ModalLayout describes where the dialog landed on screen so the
// model can route clicks: inside the box is the dialog, outside is
// the overlay.
type ModalLayout struct {
	X, Y, W, H int
	CloseY     int
	CloseX0    int
	CloseX1    int
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// RenderModalOverlay dims the page and centers the booking dialog on
// top of it. Coordinates in the returned layout are screen cells.
func (r *Renderer) RenderModalOverlay(base, title, body string, width, height int) (string, *ModalLayout) {
	const closeLabel = "[ close ]"

	content := []string{r.styles.ModalTitle.Render(title), ""}
	for _, l := range wrapText(body, 44) {
		content = append(content, l)
	}
	content = append(content, "", r.styles.CloseButton.Render(closeLabel))

	box := r.styles.ModalBox.Render(strings.Join(content, "\n"))
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, l := range boxLines {
		if w := visibleWidth(l); w > boxW {
			boxW = w
		}
	}
	boxH := len(boxLines)

	x := (width - boxW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - boxH) / 2
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := ansiRE.ReplaceAllString(line, "")
		if i < y || i >= y+boxH {
			out[i] = r.styles.Dim.Render(plain)
			continue
		}
		// splice the dialog line over the dimmed page line
		runes := []rune(plain)
		left := ""
		if x <= len(runes) {
			left = string(runes[:x])
		} else {
			left = plain + strings.Repeat(" ", x-len(runes))
		}
		right := ""
		if x+boxW < len(runes) {
			right = string(runes[x+boxW:])
		}
		out[i] = r.styles.Dim.Render(left) + boxLines[i-y] + r.styles.Dim.Render(right)
	}

	layout := &ModalLayout{
		X: x, Y: y, W: boxW, H: boxH,
		// border row + padding row above the content, content starts
		// at column x+3 (border + horizontal padding)
		CloseY:  y + boxH - 3,
		CloseX0: x + 3,
		CloseX1: x + 3 + len(closeLabel) - 1,
	}
	return strings.Join(out, "\n"), layout
}

// Contains reports whether a screen cell falls inside the dialog box
func (l *ModalLayout) Contains(x, y int) bool {
	return x >= l.X && x < l.X+l.W && y >= l.Y && y < l.Y+l.H
}

// OnClose reports whether a screen cell hits the close button
func (l *ModalLayout) OnClose(x, y int) bool {
	return y == l.CloseY && x >= l.CloseX0 && x <= l.CloseX1
}
