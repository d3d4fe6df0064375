// Package cmd provides the CLI commands for the tomodoro application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jdhalbert/tomodoro/internal/adapters/notification"
	"github.com/jdhalbert/tomodoro/internal/adapters/storage"
	"github.com/jdhalbert/tomodoro/internal/adapters/term"
	"github.com/jdhalbert/tomodoro/internal/config"
	"github.com/jdhalbert/tomodoro/internal/domain"
	"github.com/jdhalbert/tomodoro/internal/logging"
	"github.com/jdhalbert/tomodoro/internal/ports"
	"github.com/jdhalbert/tomodoro/internal/services"
	"github.com/jdhalbert/tomodoro/internal/timer"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath    string
	noWelcome bool

	// Global dependencies
	appConfig       *config.Config
	storageAdapter  ports.Storage
	intervalService *services.IntervalService
	notifier        *notification.Notifier
	logger          *logrus.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tomodoro",
	Short: "tomodoro - a fullscreen terminal Pomodoro timer",
	Long: `tomodoro is a fullscreen terminal Pomodoro timer with large
countdown digits.

Run "tomodoro" with no arguments to open the timer. Press s to start
or stop, w or b to configure a work or break interval, q to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.tomodoro/tomodoro.db)")
	rootCmd.Flags().BoolVar(&noWelcome, "no-welcome", false, "Skip the startup animation")
}

// initializeServices loads config and opens the shared dependencies.
func initializeServices() error {
	cfg, loadErr := config.Load()
	if loadErr != nil {
		cfg = config.DefaultConfig()
		dataDir, err := config.ResolveDataDir(cfg.Storage.DataDir)
		if err != nil {
			return err
		}
		cfg.Storage.DataDir = dataDir
	}
	appConfig = cfg

	logger = logging.New(config.GetLogPath(appConfig))
	if loadErr != nil {
		logger.WithError(loadErr).Warn("failed to load config, using defaults")
	}

	path := dbPath
	if path == "" {
		if err := os.MkdirAll(appConfig.Storage.DataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		path = config.GetDBPath(appConfig)
	}
	store, err := storage.New(path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	storageAdapter = store

	intervalService = services.NewIntervalService(storageAdapter)
	notifier = notification.New(&appConfig.Notifications)
	return nil
}

// cleanupServices closes the shared dependencies.
func cleanupServices() error {
	if storageAdapter != nil {
		return storageAdapter.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// runTimer opens the fullscreen UI and runs the session loop.
func runTimer(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()
	theme := appConfig.Theme

	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	if appConfig.Welcome.Enabled && !noWelcome {
		screen.ShowWelcome(timer.Title, theme.ColorTitle,
			time.Duration(appConfig.Welcome.CharDelay),
			time.Duration(appConfig.Welcome.HoldDelay))
	}

	header, err := term.NewHeader(screen, theme.ColorBorder,
		term.Section{Text: timer.Title, Color: theme.ColorTitle, Bold: true},
		term.Section{Text: timer.HintStart, Color: theme.ColorPrompt},
		term.Section{Text: timer.HintWork, Color: theme.ColorPrompt},
		term.Section{Text: timer.HintBreak, Color: theme.ColorPrompt},
	)
	if err != nil {
		return err
	}

	display, err := term.NewDigitDisplay(screen, theme.ColorBorder)
	if err != nil {
		return err
	}

	cmdWindow := term.NewCommandWindow(screen, theme.ColorBorder, theme.ColorPrompt)
	cmdWindow.ShowPrompt(timer.IdlePrompt, false)

	profiles := domain.NewProfiles(
		domain.ModeProfile{
			Minutes: domain.ClampMinutes(appConfig.Timer.WorkMinutes),
			Color:   theme.ColorWork,
			Prompt:  "Work minutes",
		},
		domain.ModeProfile{
			Minutes: domain.ClampMinutes(appConfig.Timer.BreakMinutes),
			Color:   theme.ColorBreak,
			Prompt:  "Break minutes",
		},
	)

	engine := timer.NewEngine(timer.SystemClock{}, display, cmdWindow, &profiles,
		time.Duration(appConfig.Timer.TickInterval))
	controller := timer.NewController(engine, cmdWindow, header, &profiles)
	session := timer.NewSession(engine, controller, cmdWindow, header, notifier, intervalService, logger)

	engine.SetTimer(profiles.For(domain.ModeWork).Minutes)
	return session.Run(ctx)
}
