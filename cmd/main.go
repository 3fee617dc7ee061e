package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"logview/internal/app"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// commands that never open the TUI
var plainCommands = map[string]struct{}{
	"logs": {}, "l": {}, "show": {}, "loggers": {}, "set-level": {},
	"init": {}, "i": {}, "version": {}, "help": {},
	"--help": {}, "-h": {}, "--no-ui": {},
}

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	args := os.Args[1:]
	applyServerFlag(cfg, args)

	var output io.Writer

	closeOutput := func() error { return nil }

	if isTUIMode(args) && term.IsTerminal(os.Stdout.Fd()) {
		output, closeOutput, err = logger.OpenOutput(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	application := createApp(cfg, output)
	application.Run()

	_ = closeOutput()
}

// isTUIMode reports whether args leave the root command opening the TUI
func isTUIMode(args []string) bool {
	for _, arg := range args {
		if _, ok := plainCommands[arg]; ok {
			return false
		}
	}

	return true
}

// applyServerFlag lets --server override server.url before the API client is built
func applyServerFlag(cfg *config.Config, args []string) {
	for i, arg := range args {
		switch {
		case arg == "--server" && i+1 < len(args):
			cfg.Server.URL = args[i+1]
		case strings.HasPrefix(arg, "--server="):
			cfg.Server.URL = strings.TrimPrefix(arg, "--server=")
		}
	}
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application; a nil output logs to stderr
func createApp(cfg *config.Config, output io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, output)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
