package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"brochure/internal/domain"
	"brochure/internal/viewport"
)

// GalleryCellState tracks one gallery image's load lifecycle
type GalleryCellState int

const (
	CellPending GalleryCellState = iota
	CellLoading
	CellLoaded
	CellFailed
)

// GalleryCell is the render state of one gallery image
type GalleryCell struct {
	Caption string
	State   GalleryCellState
	Art     []string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title     string
	Nav       []domain.NavLink
	HoverLink int // -1 when the pointer is over no link

	Slides      []domain.Slide
	Offsets     []int
	ActiveSlide int
	SlideCount  int

	AboutHeading string
	AboutBody    string

	Tabs      []domain.Tab
	ActiveTab int

	Gallery []GalleryCell

	ContactHeading string
	ContactBody    string

	Revealed map[domain.SectionID]bool
}

// RenderedDoc is the fully rendered document plus its layout: line
// content, per-section positions, clickable spans and the gallery
// cell regions the lazy loader observes. All coordinates are document
// lines.
type RenderedDoc struct {
	Lines        []string
	Hits         *HitMap
	Tops         map[domain.SectionID]int
	Heights      map[domain.SectionID]int
	GalleryCells []viewport.Region
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the style set for overlay rendering
func (r *Renderer) Styles() *Styles { return r.styles }

// RenderDocument renders every section top to bottom
func (r *Renderer) RenderDocument(vs *ViewState) *RenderedDoc {
	doc := &RenderedDoc{
		Hits:    NewHitMap(),
		Tops:    make(map[domain.SectionID]int),
		Heights: make(map[domain.SectionID]int),
	}

	y := 0
	for _, id := range domain.SectionOrder {
		var lines []string
		switch id {
		case domain.SectionHero:
			lines = r.renderHero(vs, y, doc.Hits)
		case domain.SectionAbout:
			lines = r.renderCopy(vs, vs.AboutHeading, vs.AboutBody)
		case domain.SectionOperations:
			lines = r.renderOperations(vs, y, doc.Hits)
		case domain.SectionGallery:
			lines = r.renderGallery(vs, y, doc)
		case domain.SectionContact:
			lines = r.renderContact(vs, y, doc.Hits)
		}

		if id != domain.SectionHero && vs.Revealed != nil && !vs.Revealed[id] {
			for i, line := range lines {
				lines[i] = r.styles.Dim.Render(line)
			}
		}

		doc.Tops[id] = y
		doc.Heights[id] = len(lines)
		doc.Lines = append(doc.Lines, lines...)
		y += len(lines)
	}

	return doc
}

// RenderNavBar renders the navigation bar on row y, registering a hit
// span per link plus the booking button.
func (r *Renderer) RenderNavBar(vs *ViewState, y int, hits *HitMap) string {
	var sb strings.Builder
	x := 0

	write := func(s string, styled string) {
		sb.WriteString(styled)
		x += len([]rune(s))
	}

	write(" ", r.styles.NavBar.Render(" "))
	write(vs.Title, r.styles.Title.Render(vs.Title))
	write("   ", r.styles.NavBar.Render("   "))

	for i, link := range vs.Nav {
		style := r.styles.NavLink
		if vs.HoverLink >= 0 {
			if vs.HoverLink == i {
				style = r.styles.NavHover
			} else {
				style = r.styles.NavFaded
			}
		}
		x0 := x
		write(link.Label, style.Render(link.Label))
		hits.Add(y, x0, x-1, HitTarget{Kind: HitNavLink, Index: i})
		write("  ", r.styles.NavBar.Render("  "))
	}

	book := " Book "
	x0 := x
	write(book, r.styles.BookButton.Render(book))
	hits.Add(y, x0, x-1, HitTarget{Kind: HitBookButton})

	if pad := vs.Width - x; pad > 0 {
		sb.WriteString(r.styles.NavBar.Render(strings.Repeat(" ", pad)))
	}
	return sb.String()
}

func (r *Renderer) renderHero(vs *ViewState, base int, hits *HitMap) []string {
	lines := []string{r.RenderNavBar(vs, base, hits), ""}

	canvases := make([][][]rune, len(vs.Slides))
	for i, s := range vs.Slides {
		canvases[i] = SlideContent(s, vs.Width)
	}
	strip := ComposeSlides(canvases, vs.Offsets, vs.Width, slideRows)
	for i, row := range strip {
		style := r.styles.Hero
		if i == 1 {
			style = r.styles.SlideTitle.Inherit(r.styles.Hero)
		} else if i == 3 {
			style = r.styles.SlideBody.Inherit(r.styles.Hero)
		}
		lines = append(lines, style.Render(row))
	}

	dotRow := base + len(lines)
	lines = append(lines, r.renderIndicators(vs.SlideCount, vs.ActiveSlide, vs.Width, dotRow, hits))
	lines = append(lines, "")
	return lines
}

func (r *Renderer) renderCopy(vs *ViewState, heading, body string) []string {
	lines := []string{"", "  " + r.styles.SectionTitle.Render(heading)}
	for _, l := range wrapText(body, vs.Width-4) {
		lines = append(lines, "  "+l)
	}
	lines = append(lines, "")
	return lines
}

func (r *Renderer) renderOperations(vs *ViewState, base int, hits *HitMap) []string {
	lines := []string{"", "  " + r.styles.SectionTitle.Render("Operations")}

	// tab row: hits land on the buttons themselves, nowhere else
	var sb strings.Builder
	sb.WriteString("  ")
	x := 2
	tabY := base + len(lines)
	for i, tab := range vs.Tabs {
		label := fmt.Sprintf("[%d] %s", i+1, tab.Label)
		style := r.styles.TabIdle
		if i == vs.ActiveTab {
			style = r.styles.TabActive
		}
		x0 := x
		sb.WriteString(style.Render(label))
		x += len([]rune(label))
		hits.Add(tabY, x0, x-1, HitTarget{Kind: HitTab, Index: i})
		sb.WriteString("   ")
		x += 3
	}
	lines = append(lines, sb.String())

	body := ""
	if vs.ActiveTab >= 0 && vs.ActiveTab < len(vs.Tabs) {
		body = vs.Tabs[vs.ActiveTab].Body
	}
	panelW := vs.Width - 6
	if panelW < 10 {
		panelW = 10
	}
	panel := r.styles.Panel.Width(panelW).Render(body)
	for _, l := range strings.Split(panel, "\n") {
		lines = append(lines, "  "+l)
	}
	lines = append(lines, "")
	return lines
}

func (r *Renderer) renderGallery(vs *ViewState, base int, doc *RenderedDoc) []string {
	lines := []string{"", "  " + r.styles.SectionTitle.Render("Gallery")}

	cols := 2
	if vs.Width < 60 {
		cols = 1
	}
	cellW := (vs.Width-6)/cols - 2
	if cellW < 12 {
		cellW = 12
	}

	for start := 0; start < len(vs.Gallery); start += cols {
		end := start + cols
		if end > len(vs.Gallery) {
			end = len(vs.Gallery)
		}
		rowTop := base + len(lines)

		blocks := make([]string, 0, end-start)
		for _, cell := range vs.Gallery[start:end] {
			blocks = append(blocks, r.renderGalleryCell(cell, cellW))
		}
		row := blocks[0]
		for _, b := range blocks[1:] {
			row = joinHorizontal(row, b)
		}
		rowLines := strings.Split(row, "\n")
		for _, l := range rowLines {
			lines = append(lines, "  "+l)
		}

		region := viewport.Region{Top: rowTop, Height: len(rowLines)}
		for range vs.Gallery[start:end] {
			doc.GalleryCells = append(doc.GalleryCells, region)
		}
	}

	lines = append(lines, "")
	return lines
}

func (r *Renderer) renderGalleryCell(cell GalleryCell, width int) string {
	const artRows = 6
	var content string
	switch cell.State {
	case CellLoaded:
		content = strings.Join(cell.Art, "\n")
	case CellFailed:
		content = r.styles.Placeholder.Render(centerText("image unavailable", width))
	case CellLoading:
		content = r.styles.Placeholder.Render(centerText("loading…", width))
	default:
		content = r.styles.Placeholder.Render(centerText("· · ·", width))
	}

	// pad the content block to a stable height so layout never shifts
	contentLines := strings.Split(content, "\n")
	for len(contentLines) < artRows {
		contentLines = append(contentLines, strings.Repeat(" ", width))
	}
	box := r.styles.GalleryBox.Width(width).Render(strings.Join(contentLines[:artRows], "\n"))
	caption := r.styles.Caption.Render(centerText(cell.Caption, width+2))
	return box + "\n" + caption
}

func (r *Renderer) renderContact(vs *ViewState, base int, hits *HitMap) []string {
	lines := []string{"", "  " + r.styles.SectionTitle.Render(vs.ContactHeading)}
	for _, l := range wrapText(vs.ContactBody, vs.Width-4) {
		lines = append(lines, "  "+l)
	}
	lines = append(lines, "")

	button := " Book a stay "
	left := (vs.Width - len(button)) / 2
	if left < 0 {
		left = 0
	}
	btnY := base + len(lines)
	hits.Add(btnY, left, left+len(button)-1, HitTarget{Kind: HitBookButton})
	lines = append(lines, strings.Repeat(" ", left)+r.styles.BookButton.Render(button))
	lines = append(lines, "", "")
	return lines
}

// RenderStatusBar renders the bottom status line
func (r *Renderer) RenderStatusBar(status string, gateAttached bool, width int) string {
	hint := ""
	if gateAttached {
		hint = "←/→ slides"
	}
	left := " " + status
	gap := width - len([]rune(left)) - len([]rune(hint)) - 1
	if gap < 1 {
		gap = 1
	}
	return r.styles.Status.Render(left + strings.Repeat(" ", gap) + hint + " ")
}

func centerText(s string, width int) string {
	rs := []rune(s)
	if len(rs) > width {
		rs = rs[:width]
	}
	pad := (width - len(rs)) / 2
	if pad < 0 {
		pad = 0
	}
	out := strings.Repeat(" ", pad) + string(rs)
	for len([]rune(out)) < width {
		out += " "
	}
	return out
}

func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if len([]rune(cur))+1+len([]rune(w)) > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		lines = append(lines, cur)
	}
	return lines
}

func visibleWidth(s string) int {
	return lipgloss.Width(s)
}

// joinHorizontal glues two blocks side by side with a two-space gap,
// padding the shorter block with blank lines.
func joinHorizontal(a, b string) string {
	al := strings.Split(a, "\n")
	bl := strings.Split(b, "\n")
	n := len(al)
	if len(bl) > n {
		n = len(bl)
	}
	aw := 0
	for _, l := range al {
		if w := visibleWidth(l); w > aw {
			aw = w
		}
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		var la, lb string
		if i < len(al) {
			la = al[i]
		}
		if i < len(bl) {
			lb = bl[i]
		}
		pad := aw - visibleWidth(la)
		if pad < 0 {
			pad = 0
		}
		out[i] = la + strings.Repeat(" ", pad) + "  " + lb
	}
	return strings.Join(out, "\n")
}
