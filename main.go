package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"motionify/internal/config"
	"motionify/internal/eventbus"
	"motionify/internal/scroll"
	"motionify/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a motionify.toml config file")
	flag.StringVar(&configPath, "c", "", "Path to a motionify.toml config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("motionify.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus: the low-frequency tier for discrete transitions
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Establish the provider scope that owns the shared scroll state
	provider := scroll.NewProvider(bus, cfg.ScrollOptions())
	defer provider.Close()

	// Create UI model
	uiModel, err := ui.NewModel(bus, provider, cfg)
	if err != nil {
		fmt.Printf("Error building UI: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program; mouse support feeds wheel scrolling
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward discrete transitions to the UI. Per-sample traffic stays out
	// of the bus entirely, so this hand-off is cheap.
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventDirectionChanged, forward)
	bus.Subscribe(eventbus.EventScrollStarted, forward)
	bus.Subscribe(eventbus.EventScrollIdle, forward)
	bus.Subscribe(eventbus.EventThresholdChanged, forward)
	bus.Subscribe(eventbus.EventIdleSupportChanged, forward)

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config from an explicit path, the working
// directory, or the user config dir, creating a default file when none exists
func loadOrCreateConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Failed to load config from %s: %v", path, err)
			fmt.Printf("Failed to load config from %s: %v\n", path, err)
			os.Exit(1)
		}
		log.Printf("Loaded config from %s", path)
		return cfg
	}

	// A motionify.toml next to the binary wins over the user config dir
	local := filepath.Join(".", "motionify.toml")
	if _, err := os.Stat(local); err == nil {
		if cfg, err := configSvc.LoadFromPath(local); err == nil {
			log.Printf("Loaded config from %s", local)
			return cfg
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	return cfg
}
