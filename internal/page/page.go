// Package page holds the laid-out document: ordered sections with
// line positions computed for the current terminal width.
package page

import (
	"brochure/internal/domain"
	"brochure/internal/viewport"
)

// Section is one laid-out stretch of the document
type Section struct {
	ID     domain.SectionID
	Title  string
	Top    int
	Height int
}

// Document is an ordered list of sections with computed tops
type Document struct {
	sections []Section
	byID     map[domain.SectionID]int
	total    int
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{byID: make(map[domain.SectionID]int)}
}

// Append adds a section of the given height below the previous one
func (d *Document) Append(id domain.SectionID, title string, height int) {
	if height < 0 {
		height = 0
	}
	d.byID[id] = len(d.sections)
	d.sections = append(d.sections, Section{
		ID:     id,
		Title:  title,
		Top:    d.total,
		Height: height,
	})
	d.total += height
}

// Total returns the document height in lines
func (d *Document) Total() int { return d.total }

// Sections returns the sections in document order
func (d *Document) Sections() []Section { return d.sections }

// Section looks a section up by id
func (d *Document) Section(id domain.SectionID) (Section, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Section{}, false
	}
	return d.sections[i], true
}

// Region returns the viewport region covered by a section. Unknown
// sections yield a zero region, which a watcher treats as never
// visible.
func (d *Document) Region(id domain.SectionID) viewport.Region {
	s, ok := d.Section(id)
	if !ok {
		return viewport.Region{}
	}
	return viewport.Region{Top: s.Top, Height: s.Height}
}

// Top returns the first line of a section, for scroll targets
func (d *Document) Top(id domain.SectionID) (int, bool) {
	s, ok := d.Section(id)
	if !ok {
		return 0, false
	}
	return s.Top, true
}

// Clamp constrains a scroll offset so the viewport stays inside the
// document. A document shorter than the viewport pins to 0.
func (d *Document) Clamp(scroll, viewHeight int) int {
	maxScroll := d.total - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}
