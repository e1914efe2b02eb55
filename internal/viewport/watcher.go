// Package viewport tracks which regions of a scrollable document are
// visible and notifies observers when their visible fraction crosses a
// configured threshold.
package viewport

// Region is a span of document lines, [Top, Top+Height)
type Region struct {
	Top    int
	Height int
}

// Options configures one observation
type Options struct {
	// Threshold is the visible fraction that must be exceeded for the
	// region to count as visible. 0 means any overlap.
	Threshold float64
	// Margin grows (positive) or shrinks (negative) the effective
	// viewport by that many lines on each edge.
	Margin int
	// Once unsubscribes the observation after its first enter.
	Once bool
}

// Callback is invoked with the new visibility each time it crosses
// the threshold.
type Callback func(visible bool)

type observation struct {
	region  Region
	opts    Options
	fn      Callback
	visible bool
	done    bool
}

// Watcher evaluates observations against the current viewport.
// All methods must be called from the UI goroutine; callbacks run
// synchronously inside SetViewport/Observe/SetRegion.
type Watcher struct {
	nextID int
	obs    map[int]*observation
	order  []int
	view   Region
}

// New creates a watcher with an empty viewport
func New() *Watcher {
	return &Watcher{obs: make(map[int]*observation)}
}

// Subscription is a handle to one observation
type Subscription struct {
	w  *Watcher
	id int
}

// Observe registers a callback for a region. The region is evaluated
// immediately against the current viewport, so an already-visible
// region fires an enter right away.
func (w *Watcher) Observe(region Region, opts Options, fn Callback) *Subscription {
	id := w.nextID
	w.nextID++
	o := &observation{region: region, opts: opts, fn: fn}
	w.obs[id] = o
	w.order = append(w.order, id)
	w.evaluate(id, o)
	return &Subscription{w: w, id: id}
}

// SetViewport updates the visible window and re-evaluates every
// observation. scroll is the first visible document line.
func (w *Watcher) SetViewport(scroll, height int) {
	w.view = Region{Top: scroll, Height: height}
	for _, id := range append([]int(nil), w.order...) {
		if o, ok := w.obs[id]; ok {
			w.evaluate(id, o)
		}
	}
}

// Viewport returns the current visible window
func (w *Watcher) Viewport() Region {
	return w.view
}

// SetRegion moves an observed region, e.g. after a re-layout
func (s *Subscription) SetRegion(region Region) {
	o, ok := s.w.obs[s.id]
	if !ok {
		return
	}
	o.region = region
	s.w.evaluate(s.id, o)
}

// Cancel removes the observation. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.w.remove(s.id)
}

func (w *Watcher) remove(id int) {
	if _, ok := w.obs[id]; !ok {
		return
	}
	delete(w.obs, id)
	for i, v := range w.order {
		if v == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *Watcher) evaluate(id int, o *observation) {
	if o.done {
		return
	}
	visible := crosses(o.region, w.view, o.opts)
	if visible == o.visible {
		return
	}
	o.visible = visible
	if o.opts.Once && visible {
		// Mark before the callback so a re-entrant SetViewport
		// cannot deliver twice.
		o.done = true
		o.fn(true)
		w.remove(id)
		return
	}
	o.fn(visible)
}

// crosses reports whether region's visible fraction exceeds the
// threshold inside view adjusted by margin. A degenerate region or
// viewport is never visible.
func crosses(region, view Region, opts Options) bool {
	if region.Height <= 0 || view.Height <= 0 {
		return false
	}
	top := view.Top - opts.Margin
	bot := view.Top + view.Height + opts.Margin
	if bot <= top {
		return false
	}
	overlap := min(region.Top+region.Height, bot) - max(region.Top, top)
	if overlap <= 0 {
		return false
	}
	frac := float64(overlap) / float64(region.Height)
	return frac > opts.Threshold
}
