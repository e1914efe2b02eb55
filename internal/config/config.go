package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"brochure/internal/domain"
	"brochure/internal/eventbus"
)

// Config is the page definition: everything the brochure renders
type Config struct {
	Version    int                   `toml:"version"`
	Title      string                `toml:"title"`
	Nav        []domain.NavLink      `toml:"nav"`
	Hero       []domain.Slide        `toml:"hero"`
	About      SectionCopy           `toml:"about"`
	Operations []domain.Tab          `toml:"operations"`
	Gallery    []domain.GalleryImage `toml:"gallery"`
	Contact    SectionCopy           `toml:"contact"`
	Modal      domain.ModalCopy      `toml:"modal"`
	UISettings UISettings            `toml:"ui"`
}

// SectionCopy is the text content of a plain section
type SectionCopy struct {
	Heading string `toml:"heading"`
	Body    string `toml:"body"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MouseEnabled   bool `toml:"mouse_enabled"`
	RevealSections bool `toml:"reveal_sections"`
}

// ConfigService handles page definition management
type ConfigService interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service using the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "brochure")
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "brochure.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the page definition from the default path
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the page definition to the default path
func (cs *configService) Save(cfg *Config) error {
	return cs.SaveToPath(cfg, cs.filePath)
}

// LoadFromPath loads a page definition from an explicit path.
// A missing file yields the default page rather than an error.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if cs.bus != nil {
			cs.bus.Publish(domain.ConfigLoadedEvent{Path: path})
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page definition: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page definition: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: path})
	}
	return &cfg, nil
}

// SaveToPath writes a page definition to an explicit path
func (cs *configService) SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode page definition: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write page definition: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: path})
	}
	return nil
}

// Validate rejects page definitions the UI cannot render.
// The carousel requires at least one slide; a single slide is fine.
func Validate(cfg *Config) error {
	if len(cfg.Hero) == 0 {
		return fmt.Errorf("page definition has no hero slides")
	}
	if len(cfg.Operations) == 0 {
		return fmt.Errorf("page definition has no operations tabs")
	}
	for i, link := range cfg.Nav {
		if !knownSection(link.Target) {
			return fmt.Errorf("nav link %d targets unknown section %q", i, link.Target)
		}
	}
	return nil
}

func knownSection(id domain.SectionID) bool {
	for _, s := range domain.SectionOrder {
		if s == id {
			return true
		}
	}
	return false
}

// DefaultConfig returns the built-in sample page
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "Grand Meridian",
		Nav: []domain.NavLink{
			{Label: "Home", Target: domain.SectionHero},
			{Label: "About", Target: domain.SectionAbout},
			{Label: "Operations", Target: domain.SectionOperations},
			{Label: "Gallery", Target: domain.SectionGallery},
			{Label: "Contact", Target: domain.SectionContact},
		},
		Hero: []domain.Slide{
			{Title: "Welcome to Grand Meridian", Body: "A quiet place on a loud coast."},
			{Title: "Rooms with a view", Body: "Every suite faces the water."},
			{Title: "Open all seasons", Body: "Winter rates from November."},
			{Title: "Book direct", Body: "No fees, free cancellation."},
		},
		About: SectionCopy{
			Heading: "About us",
			Body:    "Family run since 1962. Forty rooms, one kitchen, zero conference halls.",
		},
		Operations: []domain.Tab{
			{Label: "Dining", Body: "Breakfast 7-10, dinner 18-22. Kitchen closes when the cook says so."},
			{Label: "Spa", Body: "Sauna and cold plunge, 10-20 daily. Towels at the desk."},
			{Label: "Activities", Body: "Kayaks, coastal trail maps, and a chess set nobody has beaten Marta at."},
		},
		Gallery: []domain.GalleryImage{
			{Path: "images/lobby.jpg", Caption: "Lobby"},
			{Path: "images/suite.jpg", Caption: "Sea suite"},
			{Path: "images/terrace.jpg", Caption: "Terrace"},
			{Path: "images/coast.jpg", Caption: "The coast"},
		},
		Contact: SectionCopy{
			Heading: "Contact",
			Body:    "front.desk@grandmeridian.example · +00 555 0142",
		},
		Modal: domain.ModalCopy{
			Title: "Book a stay",
			Body:  "Call the front desk or write to bookings@grandmeridian.example.\nWe answer within the hour, daytime.",
		},
		UISettings: UISettings{
			MouseEnabled:   true,
			RevealSections: true,
		},
	}
}
