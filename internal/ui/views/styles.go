package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	NavBar       lipgloss.Style
	NavLink      lipgloss.Style
	NavHover     lipgloss.Style
	NavFaded     lipgloss.Style
	SlideTitle   lipgloss.Style
	SlideBody    lipgloss.Style
	Hero         lipgloss.Style
	DotActive    lipgloss.Style
	DotIdle      lipgloss.Style
	ArrowButton  lipgloss.Style
	SectionTitle lipgloss.Style
	Dim          lipgloss.Style
	TabActive    lipgloss.Style
	TabIdle      lipgloss.Style
	Panel        lipgloss.Style
	GalleryBox   lipgloss.Style
	Caption      lipgloss.Style
	Placeholder  lipgloss.Style
	BookButton   lipgloss.Style
	ModalBox     lipgloss.Style
	ModalTitle   lipgloss.Style
	CloseButton  lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		NavBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")),
		NavLink:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		NavHover: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Background(lipgloss.Color("236")).Bold(true),
		NavFaded: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Background(lipgloss.Color("236")),
		SlideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("223")),
		SlideBody: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Hero: lipgloss.NewStyle().
			Background(lipgloss.Color("17")),
		DotActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		DotIdle:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ArrowButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:          lipgloss.NewStyle().Faint(true),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("228")).
			Underline(true),
		TabIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		GalleryBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Caption:     lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Italic(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		BookButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		CloseButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
