package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"gitsift/internal/config"
	"gitsift/internal/eventbus"
	"gitsift/internal/git"
	"gitsift/internal/ui"
)

func main() {
	var targetDir, configPath string
	flag.StringVar(&targetDir, "dir", "", "Directory inside the repository to inspect")
	flag.StringVar(&targetDir, "d", "", "Directory inside the repository to inspect (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	logFile := setupLogging(cfg.LogFile)
	if logFile != nil {
		defer logFile.Close()
	}
	if cfgErr != nil {
		log.WithField("path", configSvc.Path()).Errorf("Error loading config, using defaults: %v", cfgErr)
	}

	gitSvc := git.NewGitService(bus, cfg.StatusOptions())

	rootCtx, rootCancel := context.WithTimeout(ctx, 10*time.Second)
	root, err := gitSvc.FindRoot(rootCtx, absDir)
	rootCancel()
	if err != nil {
		if errors.Is(err, git.ErrNotRepository) {
			fmt.Printf("%s is not inside a git repository\n", absDir)
		} else {
			fmt.Printf("Error opening repository: %v\n", err)
		}
		log.Errorf("Error opening repository: %v", err)
		os.Exit(1)
	}
	log.WithField("repo", root).Info("Opened repository")

	uiModel := ui.NewModel(bus, cfg, gitSvc, root)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward bus events to the UI; the model owns all UI state
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.WithField("event", e.Type()).Warn("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventStatusLoaded, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("Starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Errorf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited normally")
}

// setupLogging sends log output to path so it does not draw over the TUI.
// When the file cannot be opened logging is discarded.
func setupLogging(path string) *os.File {
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	log.SetLevel(log.InfoLevel)
	if os.Getenv("GITSIFT_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}
