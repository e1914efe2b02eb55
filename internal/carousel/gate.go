package carousel

import "brochure/internal/viewport"

// KeyFunc receives a key name and reports whether it consumed it
type KeyFunc func(key string) bool

// AttachFunc installs a key listener and returns the function that
// removes it again.
type AttachFunc func(fn KeyFunc) (release func())

// Gate attaches carousel key control while the hero region is
// substantially visible and detaches it when it leaves view, so arrow
// keys elsewhere on the page are never hijacked.
//
// Acquire and release are strictly paired: repeated enters while held
// are no-ops, as are exits while released.
type Gate struct {
	car      *Carousel
	attach   AttachFunc
	release  func() // non-nil only while the listener is installed
	sub      *viewport.Subscription
	onChange func(attached bool)
}

// GateThreshold is the visible fraction of the hero region required
// before keyboard control attaches.
const GateThreshold = 0.75

// NewGate observes region on w and manages the key listener lifetime.
// attach is called on visibility-enter; its returned release runs on
// visibility-exit and on Close.
func NewGate(w *viewport.Watcher, region viewport.Region, car *Carousel, attach AttachFunc) *Gate {
	g := &Gate{car: car, attach: attach}
	g.sub = w.Observe(region, viewport.Options{Threshold: GateThreshold}, g.onVisibility)
	return g
}

// SetOnChange registers a listener for attach/detach transitions
func (g *Gate) SetOnChange(fn func(attached bool)) { g.onChange = fn }

// Attached reports whether the key listener is currently installed
func (g *Gate) Attached() bool { return g.release != nil }

// SetRegion moves the observed hero region after a re-layout
func (g *Gate) SetRegion(region viewport.Region) {
	g.sub.SetRegion(region)
}

// Close detaches the listener and stops observing. Deterministic
// teardown; safe to call more than once.
func (g *Gate) Close() {
	g.sub.Cancel()
	g.detach()
}

func (g *Gate) onVisibility(visible bool) {
	if visible {
		g.acquire()
	} else {
		g.detach()
	}
}

func (g *Gate) acquire() {
	if g.release != nil {
		return
	}
	g.release = g.attach(g.handleKey)
	if g.onChange != nil {
		g.onChange(true)
	}
}

func (g *Gate) detach() {
	if g.release == nil {
		return
	}
	g.release()
	g.release = nil
	if g.onChange != nil {
		g.onChange(false)
	}
}

// handleKey maps the next/previous keys onto the carousel and lets
// everything else fall through.
func (g *Gate) handleKey(key string) bool {
	switch key {
	case "right", "l":
		g.car.Next()
		return true
	case "left", "h":
		g.car.Prev()
		return true
	}
	return false
}
