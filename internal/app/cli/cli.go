//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"logview/internal/app/bus"
	"logview/internal/app/criteria"
	"logview/internal/app/errors"
	"logview/internal/app/fetch"
	"logview/internal/app/generator"
	"logview/internal/app/model"
	"logview/internal/app/session"
	"logview/internal/app/telemetry"
	"logview/internal/app/ui/wire"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// followBuffer bounds the log pages queued while following
const followBuffer = 16

// CLI defines the interface for cli operations
type CLI interface {
	Run(args []string) error
}

// Params contains dependencies for creating the cli
type Params struct {
	fx.In

	Config    *config.Config
	Session   session.Session
	Generator generator.Generator
	Telemetry telemetry.Telemetry
	UI        wire.UI
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	cfg        *config.Config
	session    session.Session
	generator  generator.Generator
	telemetry  telemetry.Telemetry
	ui         wire.UI
	log        logger.Logger
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		cfg:        p.Config,
		session:    p.Session,
		generator:  p.Generator,
		telemetry:  p.Telemetry,
		ui:         p.UI,
		log:        p.Logger.WithComponent("CLI"),
		out:        os.Stdout,
		errOut:     os.Stderr,
		isTerminal: func() bool { return term.IsTerminal(os.Stdout.Fd()) },
	}
}

// Run processes command-line arguments and executes commands
func (c *cli) Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.run(ctx, args)
}

func (c *cli) run(ctx context.Context, args []string) error {
	opts, err := Parse(args)
	if err != nil {
		c.log.Debug().Err(err).Msg("Failed to parse arguments")
		fmt.Fprintln(c.errOut, RenderError(err))
		fmt.Fprintf(c.errOut, "Use '%s --help' for more information.\n", config.AppName)

		return err
	}

	c.log.Debug().Msgf("Running command: %s", opts.Type)

	if err := c.dispatch(ctx, opts); err != nil {
		c.log.Error().Err(err).Msgf("Command '%s' failed", opts.Type)
		c.telemetry.CaptureError(err, map[string]string{"command": opts.Type.String()})
		fmt.Fprintln(c.errOut, RenderError(err))

		return err
	}

	return nil
}

func (c *cli) dispatch(ctx context.Context, opts *Options) error {
	switch opts.Type {
	case CommandHelp:
		fmt.Fprintln(c.out, RenderTitle())
		fmt.Fprintln(c.out)
		fmt.Fprint(c.out, opts.Usage)

		return nil
	case CommandVersion:
		fmt.Fprintln(c.out, RenderTitle())
		return nil
	case CommandInit:
		return c.runInit(opts)
	case CommandLogs:
		return c.runLogs(ctx, opts)
	case CommandShow:
		return c.runShow(ctx, opts)
	case CommandLoggers:
		return c.runLoggers(ctx, opts)
	case CommandSetLevel:
		return c.runSetLevel(ctx, opts)
	default:
		if opts.NoUI || !c.isTerminal() {
			return c.runLogs(ctx, opts)
		}

		return c.runUI(ctx, opts)
	}
}

func (c *cli) runInit(opts *Options) error {
	genOpts := generator.DefaultOptions()

	if opts.Filters.Server != "" {
		genOpts.ServerURL = opts.Filters.Server
	}

	if opts.Filters.Limit > 0 {
		genOpts.Limit = opts.Filters.Limit
	}

	genOpts.Polling = opts.Follow

	return c.generator.Generate(genOpts, opts.Force, opts.DryRun)
}

// start applies the filter flags before the initial fetch so it already honors them
func (c *cli) start(f Filters) {
	c.session.Filters().Batch(func(m criteria.Mutator) {
		if f.MinTime != "" {
			m.SetMinTime(f.MinTime)
		}

		if f.MaxTime != "" {
			m.SetMaxTime(f.MaxTime)
		}

		if f.Offset > 0 {
			m.SetOffset(f.Offset)
		}

		if f.Limit > 0 {
			m.SetLimit(f.Limit)
		}

		if f.Search != "" {
			m.SetSearch(f.Search)
		}

		for _, id := range f.Exclude {
			m.Exclude(id)
		}
	})

	c.session.Start()
}

// excludePatterns waits for the logger list, then narrows the exclusion set by name
func (c *cli) excludePatterns(ctx context.Context, patterns []string) error {
	if len(patterns) == 0 {
		return nil
	}

	if err := c.session.Await(ctx); err != nil {
		return err
	}

	if loggers := c.session.Loggers(); loggers.Failed() {
		return errors.New(loggers.Err)
	}

	if err := c.session.ExcludePatterns(patterns); err != nil {
		return err
	}

	return c.session.Await(ctx)
}

func (c *cli) runLogs(ctx context.Context, opts *Options) error {
	c.start(opts.Filters)
	defer c.session.Close()

	if err := c.session.Await(ctx); err != nil {
		return err
	}

	if err := c.excludePatterns(ctx, opts.Filters.ExcludePatterns); err != nil {
		return err
	}

	logs := c.session.Logs()
	if logs.Failed() {
		return errors.New(logs.Err)
	}

	p := newPrinter(c.out, opts.Output)

	if !opts.Follow {
		return p.Logs(logs.Data)
	}

	if err := p.Stream(logs.Data); err != nil {
		return err
	}

	return c.follow(ctx, p, logs.Data)
}

// follow polls for new entries and prints each one once until ctx ends
func (c *cli) follow(ctx context.Context, p printer, initial []model.LogEntry) error {
	seen := make(map[int64]struct{}, len(initial))
	for _, e := range initial {
		seen[e.ID] = struct{}{}
	}

	pages := make(chan []model.LogEntry, followBuffer)

	cancel := c.session.OnChange(func(msg bus.Message) {
		if msg.Type != bus.EventLogsUpdated {
			return
		}

		update, ok := msg.Data.(bus.LogsUpdated)
		if !ok || update.State.Status != fetch.StatusSuccess {
			return
		}

		select {
		case pages <- update.State.Data:
		default:
			c.log.Warn().Msg("Dropped log page while following")
		}
	})
	defer cancel()

	c.session.SetPolling(true)
	c.log.Info().Msg("Following new entries")

	for {
		select {
		case <-ctx.Done():
			return nil
		case page := <-pages:
			fresh := make([]model.LogEntry, 0, len(page))

			for _, e := range page {
				if _, ok := seen[e.ID]; ok {
					continue
				}

				seen[e.ID] = struct{}{}
				fresh = append(fresh, e)
			}

			if len(fresh) == 0 {
				continue
			}

			if err := p.Stream(fresh); err != nil {
				return err
			}
		}
	}
}

func (c *cli) runShow(ctx context.Context, opts *Options) error {
	c.start(opts.Filters)
	defer c.session.Close()

	c.session.Select(opts.LogID)

	if err := c.session.Await(ctx); err != nil {
		return err
	}

	entry := c.session.Drilldown()
	if entry.Failed() {
		return errors.New(entry.Err)
	}

	return newPrinter(c.out, opts.Output).Log(entry.Data)
}

func (c *cli) runLoggers(ctx context.Context, opts *Options) error {
	c.start(opts.Filters)
	defer c.session.Close()

	if err := c.session.Await(ctx); err != nil {
		return err
	}

	loggers := c.session.Loggers()
	if loggers.Failed() {
		return errors.New(loggers.Err)
	}

	return newPrinter(c.out, opts.Output).Loggers(loggers.Data)
}

func (c *cli) runSetLevel(ctx context.Context, opts *Options) error {
	done := make(chan struct{})

	c.session.SetLoggerLevel(opts.LoggerID, opts.Level, func() { close(done) })
	defer c.session.Close()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}

	state := c.session.LevelState(opts.LoggerID)
	if state.Failed() {
		return errors.New(state.Err)
	}

	return newPrinter(c.out, opts.Output).Level(opts.LoggerID, opts.Level, state.Data)
}

func (c *cli) runUI(ctx context.Context, opts *Options) error {
	c.start(opts.Filters)
	defer c.session.Close()

	if len(opts.Filters.ExcludePatterns) > 0 {
		go func() {
			if err := c.excludePatterns(ctx, opts.Filters.ExcludePatterns); err != nil {
				c.log.Warn().Err(err).Msg("Failed to apply exclude patterns")
			}
		}()
	}

	p, err := c.ui(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToStartUI, err)
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("%w: %w", errors.ErrFailedToStartUI, err)
	}

	return nil
}
