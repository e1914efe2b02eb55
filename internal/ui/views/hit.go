package views

// HitKind classifies a clickable target
type HitKind int

const (
	HitNone HitKind = iota
	HitNavLink
	HitPrevButton
	HitNextButton
	HitIndicator
	HitTab
	HitBookButton
	HitModalClose
)

// HitTarget is what a click landed on. Index carries the tagged
// position for nav links, indicators and tabs.
type HitTarget struct {
	Kind  HitKind
	Index int
}

type hitSpan struct {
	y      int
	x0, x1 int // inclusive columns
	target HitTarget
}

// HitMap records clickable spans while rendering so the model can
// translate mouse coordinates back into targets. Coordinates are in
// whatever space the renderer built them in (document lines for the
// page, screen rows for overlays).
type HitMap struct {
	spans []hitSpan
}

func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers the span [x0, x1] on row y
func (m *HitMap) Add(y, x0, x1 int, target HitTarget) {
	m.spans = append(m.spans, hitSpan{y: y, x0: x0, x1: x1, target: target})
}

// At returns the target under (x, y). Later spans win, so overlays
// registered after the base layer take priority.
func (m *HitMap) At(x, y int) (HitTarget, bool) {
	for i := len(m.spans) - 1; i >= 0; i-- {
		s := m.spans[i]
		if s.y == y && x >= s.x0 && x <= s.x1 {
			return s.target, true
		}
	}
	return HitTarget{}, false
}
