//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"go.yaml.in/yaml/v3"

	"logview/internal/app/errors"
	"logview/internal/config"
	"logview/internal/config/logger"
)

const (
	templatePath = "templates/logview.yaml.tmpl"
)

//go:embed templates/logview.yaml.tmpl
var templateFS embed.FS

// Options contains the values written into logview.yaml
type Options struct {
	ServerURL string
	Timeout   time.Duration
	Limit     int
	Polling   bool
	Interval  time.Duration
}

// DefaultOptions returns the built-in defaults
func DefaultOptions() Options {
	return Options{
		ServerURL: config.DefaultServerURL,
		Timeout:   config.DefaultServerTimeout,
		Limit:     config.DefaultLimit,
		Polling:   false,
		Interval:  config.DefaultPollInterval,
	}
}

// Generator defines the interface for generating logview.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	path string
	out  io.Writer
	log  logger.Logger
}

// NewGenerator creates a generator writing logview.yaml in the working directory
func NewGenerator(log logger.Logger) Generator {
	return NewGeneratorAt(config.ConfigFile, os.Stdout, log)
}

// NewGeneratorAt creates a generator writing to path; dry runs print to out
func NewGeneratorAt(path string, out io.Writer, log logger.Logger) Generator {
	return &generator{
		path: path,
		out:  out,
		log:  log,
	}
}

// Generate renders the template and writes it unless the file exists and force is off
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(g.path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrConfigFileExists, g.path)
		}
	}

	content, err := render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(g.path, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", g.path)

	return nil
}

// render executes the template and checks the result decodes as a valid config
func render(opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.ConfigFile).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	var doc struct {
		Version int `yaml:"version"`
		Server  struct {
			URL string `yaml:"url"`
		} `yaml:"server"`
		Query struct {
			Limit int `yaml:"limit"`
		} `yaml:"query"`
	}

	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	if doc.Query.Limit <= 0 || doc.Server.URL == "" {
		return nil, fmt.Errorf("%w: server url and a positive limit are required", errors.ErrInvalidConfig)
	}

	return buf.Bytes(), nil
}
