package carousel

// IndicatorStrip keeps one indicator per slide with exactly one
// active, always the carousel's current index. It never polls the
// carousel; the carousel pushes every change through activate.
type IndicatorStrip struct {
	car    *Carousel
	active []bool
}

func newIndicatorStrip(car *Carousel, n int) *IndicatorStrip {
	return &IndicatorStrip{
		car:    car,
		active: make([]bool, n),
	}
}

// Count returns the number of indicators
func (s *IndicatorStrip) Count() int { return len(s.active) }

// Active returns the index of the active indicator
func (s *IndicatorStrip) Active() int {
	for i, on := range s.active {
		if on {
			return i
		}
	}
	return 0
}

// IsActive reports whether indicator i is the active one
func (s *IndicatorStrip) IsActive(i int) bool {
	return i >= 0 && i < len(s.active) && s.active[i]
}

// Click routes a click on indicator i into the carousel. The i comes
// from the indicator's own tagged position, so it is always in range;
// clicks that hit no indicator never reach here.
func (s *IndicatorStrip) Click(i int) {
	s.car.Goto(i)
}

// activate clears every indicator and sets i. Idempotent.
func (s *IndicatorStrip) activate(i int) {
	for j := range s.active {
		s.active[j] = false
	}
	s.active[i] = true
}
