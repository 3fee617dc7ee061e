package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"logview/internal/app/errors"
	"logview/internal/app/model"
	"logview/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandUI CommandType = iota
	CommandLogs
	CommandShow
	CommandLoggers
	CommandSetLevel
	CommandInit
	CommandVersion
	CommandHelp
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// String returns the command name used in logs and error reports
func (t CommandType) String() string {
	switch t {
	case CommandUI:
		return "ui"
	case CommandLogs:
		return "logs"
	case CommandShow:
		return "show"
	case CommandLoggers:
		return "loggers"
	case CommandSetLevel:
		return "set-level"
	case CommandInit:
		return "init"
	case CommandVersion:
		return "version"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Filters holds the query flags shared by the root and logs commands
type Filters struct {
	Server          string
	MinTime         string
	MaxTime         string
	Offset          int
	Limit           int
	Search          string
	Exclude         []int
	ExcludePatterns []string
}

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	Filters  Filters
	Follow   bool
	Output   string
	NoUI     bool
	LogID    int64
	LoggerID int
	Level    model.Level
	Force    bool
	DryRun   bool
	Usage    string
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:   CommandUI,
		Output: OutputText,
	}

	root := buildRootCommand(result)
	root.AddCommand(
		buildLogsCommand(result),
		buildShowCommand(result),
		buildLoggersCommand(result),
		buildSetLevelCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, err)
		}

		return nil, err
	}

	if err := validateOptions(result); err != nil {
		return nil, err
	}

	return result, nil
}

// validateOptions checks flag values cobra cannot check by type alone
func validateOptions(opts *Options) error {
	switch opts.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: '%s' (must be one of text, json, yaml)", errors.ErrInvalidOutput, opts.Output)
	}

	if opts.Filters.Offset < 0 {
		return fmt.Errorf("%w: --offset must not be negative", errors.ErrInvalidArgs)
	}

	if opts.Filters.Limit < 0 {
		return fmt.Errorf("%w: --limit must be positive", errors.ErrInvalidArgs)
	}

	return nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: config.AppDescription,
		Long: `Logview browses the entries of a log store service, filters them by time,
text and logger, inspects single entries and changes logger levels at runtime.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandUI
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&result.Filters.Server, "server", "", "Log store base URL (overrides server.url)")
	flags.StringVar(&result.Filters.MinTime, "min-time", "", "Only entries at or after this time")
	flags.StringVar(&result.Filters.MaxTime, "max-time", "", "Only entries at or before this time")
	flags.IntVar(&result.Filters.Offset, "offset", 0, "Number of entries to skip")
	flags.IntVar(&result.Filters.Limit, "limit", 0, "Page size (defaults to query.limit)")
	flags.StringVar(&result.Filters.Search, "search", "", "Only entries whose message contains this text")
	flags.IntSliceVar(&result.Filters.Exclude, "exclude", nil, "Hide entries of this logger id (repeatable)")
	flags.StringSliceVar(&result.Filters.ExcludePatterns, "exclude-pattern", nil, "Hide loggers whose name matches this glob (repeatable)")
	flags.BoolVar(&result.Follow, "follow", false, "Keep polling for new entries")
	flags.StringVarP(&result.Output, "output", "o", OutputText, "Output format: text, json or yaml")
	flags.BoolVar(&result.NoUI, "no-ui", false, "Print logs instead of opening the TUI")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
		result.Usage = cmd.UsageString()
	})

	return cmd
}

// buildLogsCommand creates the logs subcommand
func buildLogsCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "logs",
		Aliases: []string{"l"},
		Short:   "Print one page of log entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandLogs
			return nil
		},
	}
}

// buildShowCommand creates the show subcommand
func buildShowCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a single log entry with its meta payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogID, args[0])
			}

			result.Type = CommandShow
			result.LogID = id

			return nil
		},
	}
}

// buildLoggersCommand creates the loggers subcommand
func buildLoggersCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "loggers",
		Short: "List loggers and their levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandLoggers
			return nil
		},
	}
}

// buildSetLevelCommand creates the set-level subcommand
func buildSetLevelCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "set-level <logger-id> <level>",
		Short: "Change the level of a logger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: logger id '%s' is not a number", errors.ErrInvalidArgs, args[0])
			}

			level, err := model.ParseLevel(args[1])
			if err != nil {
				return err
			}

			result.Type = CommandSetLevel
			result.LoggerID = id
			result.Level = level

			return nil
		},
	}
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.ConfigFile + " template",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandInit
			return nil
		},
	}

	cmd.Flags().BoolVar(&result.Force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandVersion
			return nil
		},
	}
}
