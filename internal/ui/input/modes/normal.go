package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"brochure/internal/ui/input/types"
)

// NormalMode handles page-level input: scrolling, tab selection, the
// booking modal trigger. Left/right are deliberately absent here;
// they belong to the carousel gate's capture listener and do nothing
// while the hero is off screen.
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.ScrollAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.ScrollAction{Direction: "end"}}, true
	}

	switch key := msg.String(); key {
	case "j":
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.ScrollAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.ScrollAction{Direction: "end"}}, true

	case "b":
		return []types.Action{
			types.OpenModalAction{},
			types.ChangeModeAction{Mode: types.ModeModal},
		}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < ctx.TabCount() {
			return []types.Action{types.SelectTabAction{Index: idx}}, true
		}
		return nil, false
	}

	return nil, false
}
