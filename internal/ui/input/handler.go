package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"brochure/internal/ui/input/modes"
	"brochure/internal/ui/input/types"
)

// CaptureFunc is a key listener consulted before mode dispatch. It
// returns true when it consumed the key. The carousel gate installs
// one of these while the hero is on screen.
type CaptureFunc func(key string) bool

type captureEntry struct {
	id int
	fn CaptureFunc
}

// Handler routes key messages to the current mode, after giving any
// installed capture listeners first refusal.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	captures    []captureEntry
	nextCapture int
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeModal] = modes.NewModalMode()

	return h
}

// AttachCapture installs a capture listener and returns the function
// that removes it. Captures only see keys in normal mode; a modal
// locks the page, carousel included.
func (h *Handler) AttachCapture(fn CaptureFunc) func() {
	id := h.nextCapture
	h.nextCapture++
	h.captures = append(h.captures, captureEntry{id: id, fn: fn})

	return func() {
		for i, c := range h.captures {
			if c.id == id {
				h.captures = append(h.captures[:i], h.captures[i+1:]...)
				break
			}
		}
	}
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if h.currentMode == types.ModeNormal {
		key := msg.String()
		for _, c := range h.captures {
			if c.fn(key) {
				return nil
			}
		}
	}

	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var all []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			all = append(all, action)
			continue
		}

		if cur := h.modes[h.currentMode]; cur != nil {
			all = append(all, cur.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			all = append(all, next.Enter(ctx)...)
		}
	}

	return all
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// SetMode switches modes directly, for transitions triggered by the
// mouse rather than a key.
func (h *Handler) SetMode(mode types.Mode) {
	h.currentMode = mode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}
