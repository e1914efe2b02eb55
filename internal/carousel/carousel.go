// Package carousel owns the hero slide state: the current index, the
// indicator strip that mirrors it, and the keyboard gate that routes
// arrow keys to it while the hero is on screen.
package carousel

import "fmt"

// Carousel owns the current slide index. All index changes go through
// Next/Prev/Goto, which push the new index to the indicator strip and
// the change listener. Nothing else mutates the index.
type Carousel struct {
	n        int
	index    int
	strip    *IndicatorStrip
	onChange func(index int)
}

// New creates a carousel over n slides, starting at slide 0.
// n must be positive; a single slide is a valid, if dull, carousel.
func New(n int) (*Carousel, error) {
	if n <= 0 {
		return nil, fmt.Errorf("carousel needs at least one slide, got %d", n)
	}
	c := &Carousel{n: n}
	c.strip = newIndicatorStrip(c, n)
	c.strip.activate(0)
	return c, nil
}

// Len returns the slide count
func (c *Carousel) Len() int { return c.n }

// Index returns the current slide index
func (c *Carousel) Index() int { return c.index }

// Strip returns the indicator strip bound to this carousel
func (c *Carousel) Strip() *IndicatorStrip { return c.strip }

// SetOnChange registers a listener called after every index change
func (c *Carousel) SetOnChange(fn func(index int)) { c.onChange = fn }

// Offsets returns each slide's horizontal offset in percent relative
// to the current index: slide i sits at 100*(i-index).
func (c *Carousel) Offsets() []int {
	offsets := make([]int, c.n)
	for i := range offsets {
		offsets[i] = 100 * (i - c.index)
	}
	return offsets
}

// Next advances to the following slide, wrapping past the last
func (c *Carousel) Next() {
	c.apply((c.index + 1) % c.n)
}

// Prev moves to the preceding slide, wrapping before the first
func (c *Carousel) Prev() {
	c.apply((c.index - 1 + c.n) % c.n)
}

// Goto jumps to slide k. Callers supply indices tagged onto
// indicators at construction, so k is valid by construction.
func (c *Carousel) Goto(k int) {
	c.apply(k)
}

func (c *Carousel) apply(i int) {
	c.index = i
	c.strip.activate(i)
	if c.onChange != nil {
		c.onChange(i)
	}
}
