package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"brochure/internal/ui/input/types"
)

// ModalMode is active while the booking dialog is open. It consumes
// every key so the page underneath stays inert; only the close keys
// and ctrl+c do anything.
type ModalMode struct{}

func NewModalMode() *ModalMode {
	return &ModalMode{}
}

func (m *ModalMode) Name() string {
	return "modal"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch msg.String() {
	case "esc", "q", "enter":
		return []types.Action{
			types.CloseModalAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else; the page is scroll-locked.
	return nil, true
}
