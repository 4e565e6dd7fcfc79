package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/weave/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags given on the command line override values from --config.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("weave", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
weave - Assemble a component tree from a layout description.

Usage:
  weave [options] [LAYOUT_PATH]

Arguments:
  LAYOUT_PATH
    Path to a .hcl, .yaml or .yml layout description.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	layoutFlag := flagSet.String("layout", "", "Path to the layout description.")
	lFlag := flagSet.String("l", "", "Path to the layout description (shorthand).")
	messagesFlag := flagSet.String("messages", "", "Path to a YAML file mapping message keys to texts.")
	demoFlag := flagSet.Bool("demo", false, "Bind the demo controller; without a layout the embedded demo layout is used.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP inspection server. 0 is disabled.")
	eventsURLFlag := flagSet.String("events-url", "", "socket.io server to receive remote events from.")
	eventsNSFlag := flagSet.String("events-namespace", "", "socket.io namespace for remote events.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var cfg app.Config
	if *configFlag != "" {
		fileCfg, err := app.LoadConfigFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = fileCfg
		slog.Debug("Configuration file loaded.", "path", *configFlag)
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override := func(name string, apply func()) {
		if set[name] {
			apply()
		}
	}
	override("messages", func() { cfg.MessagesPath = *messagesFlag })
	override("demo", func() { cfg.Demo = *demoFlag })
	override("serve-port", func() { cfg.ServePort = *servePortFlag })
	override("events-url", func() { cfg.EventsURL = *eventsURLFlag })
	override("events-namespace", func() { cfg.EventsNamespace = *eventsNSFlag })
	if set["log-format"] || cfg.LogFormat == "" {
		cfg.LogFormat = *logFormatFlag
	}
	if set["log-level"] || cfg.LogLevel == "" {
		cfg.LogLevel = *logLevelFlag
	}

	switch {
	case *layoutFlag != "":
		cfg.LayoutPath = *layoutFlag
	case *lFlag != "":
		cfg.LayoutPath = *lFlag
	case flagSet.NArg() > 0:
		cfg.LayoutPath = flagSet.Arg(0)
	}
	slog.Debug("Layout path determined.", "path", cfg.LayoutPath)

	if cfg.LayoutPath == "" && !cfg.Demo {
		slog.Debug("No layout path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
