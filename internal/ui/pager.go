package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerOps shows long-form text in ov, handing the terminal over and
// back around the pager run.
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates a new pager handler
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(prog *tea.Program) {
	p.program = prog
}

// Show pages content in ov. Blocks until the pager exits.
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// give ov a beat to fully exit before taking the screen back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// helpContent builds the key reference shown by the pager
func helpContent() string {
	var sb strings.Builder
	sb.WriteString("brochure - key reference\n")
	sb.WriteString("\n")
	sb.WriteString("Page\n")
	sb.WriteString("  j/k, ↑/↓      scroll one line\n")
	sb.WriteString("  PgUp/PgDn     scroll one page\n")
	sb.WriteString("  g/G           top / bottom\n")
	sb.WriteString("\n")
	sb.WriteString("Hero carousel (while it fills the screen)\n")
	sb.WriteString("  ←/→, h/l      previous / next slide\n")
	sb.WriteString("  click ‹ ›     previous / next slide\n")
	sb.WriteString("  click a dot   jump to that slide\n")
	sb.WriteString("\n")
	sb.WriteString("Operations\n")
	sb.WriteString("  1-9           select a tab\n")
	sb.WriteString("  click a tab   select it\n")
	sb.WriteString("\n")
	sb.WriteString("Booking\n")
	sb.WriteString("  b             open the booking dialog\n")
	sb.WriteString("  esc, q        close it (or click outside)\n")
	sb.WriteString("\n")
	sb.WriteString("Misc\n")
	sb.WriteString("  ?             this help\n")
	sb.WriteString("  q, ctrl+c     quit\n")
	return sb.String()
}
