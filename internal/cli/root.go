// Package cli is the couchnav command line
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"couchnav/internal/catalog"
	"couchnav/internal/config"
	"couchnav/internal/eventbus"
	"couchnav/internal/logger"
	"couchnav/internal/ui"
)

var (
	configPath  string
	catalogPath string
	logPath     string
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "couchnav",
	Short: "Remote-control style media browser for the terminal",
	Long: `couchnav browses a media catalog the way a TV remote does: up and down
move between sections, left and right move inside them, and back always
returns to where you were.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/couchnav/config.toml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog TOML file (default built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Log file (default couchnav.log)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies the command line overrides
func loadConfig(bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	svc := config.NewConfigServiceWithBus(path, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	applyFlags(cfg)
	return cfg, svc, nil
}

func applyFlags(cfg *config.Config) {
	if catalogPath != "" {
		cfg.Catalog = catalogPath
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}
	if debugMode {
		cfg.Log.Debug = true
	}
}

// forwarded are the events the UI shows
var forwarded = []eventbus.EventType{
	eventbus.EventWatchlistChanged,
	eventbus.EventSnapshotRestored,
}

func runTUI(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	defer bus.Close()

	cfg, _, err := loadConfig(bus)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Path); err != nil {
		return err
	}
	defer logger.Close()
	logger.SetDebug(cfg.Log.Debug)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	store := catalog.NewStore()
	watchlist := catalog.NewWatchlist(bus)
	m := ui.NewModel(bus, cfg, store, watchlist)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range forwarded {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				logger.Get().Warn("event channel full, dropping event", "event", e.Type())
			}
		})
		defer unsubscribe()
	}
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

	_, err = p.Run()
	cancel()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
