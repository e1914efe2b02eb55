package types

import "brochure/internal/domain"

// Scroll actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

// GotoSectionAction glides the viewport to a section
type GotoSectionAction struct {
	Target domain.SectionID
}

func (a GotoSectionAction) Type() string { return "goto_section" }

// SelectTabAction activates an operations tab
type SelectTabAction struct {
	Index int
}

func (a SelectTabAction) Type() string { return "select_tab" }

// Modal actions
type OpenModalAction struct{}

func (a OpenModalAction) Type() string { return "open_modal" }

type CloseModalAction struct{}

func (a CloseModalAction) Type() string { return "close_modal" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// ShowHelpAction opens the key reference in the pager
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// QuitAction exits the program
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
