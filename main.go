package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"brochure/internal/config"
	"brochure/internal/domain"
	"brochure/internal/eventbus"
	"brochure/internal/ui"
)

func main() {
	var pagePath string
	flag.StringVar(&pagePath, "page", "", "Path to a brochure.toml page definition")
	flag.StringVar(&pagePath, "p", "", "Path to a brochure.toml page definition (shorthand)")
	flag.Parse()

	// Set up logging; the TUI owns stdout
	logFile, err := os.OpenFile("brochure.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load the page definition
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if pagePath != "" {
		cfg, err = configSvc.LoadFromPath(pagePath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading page definition: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading page definition: %v\n", err)
		os.Exit(1)
	}

	// Create UI model
	uiModel, err := ui.NewModel(cfg, bus)
	if err != nil {
		log.Printf("Error building UI: %v", err)
		fmt.Fprintf(os.Stderr, "Error building UI: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.MouseEnabled {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Forward bus events into the UI loop and the log
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []domain.EventType{
		domain.EventSlideChanged,
		domain.EventTabSelected,
		domain.EventModalOpened,
		domain.EventModalClosed,
		domain.EventSectionRevealed,
		domain.EventImageLoaded,
		domain.EventNavActivated,
		domain.EventGateChanged,
	} {
		bus.Subscribe(t, forward)
	}
	bus.Subscribe(domain.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.ConfigLoadedEvent); ok {
			log.Printf("Page definition loaded from %s", ev.Path)
		}
	})

	go func() {
		for event := range eventChan {
			log.Printf("Event: %s", event.Type())
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}
