package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/sortbench/internal/cli/config"
	"github.com/yndnr/sortbench/internal/cli/output"
	"github.com/yndnr/sortbench/internal/core/domain"
	"github.com/yndnr/sortbench/internal/infra/buildinfo"
	"github.com/yndnr/sortbench/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "sortbench",
		Usage:   "Benchmark five sorting algorithms on random alphanumeric items",
		Version: buildinfo.String(),
		Flags:   append(globalFlags(), runFlags()...),
		Action:  runAction,
		// Logs the error code; main prints the error itself.
		ExitErrHandler: logExitError,
		Commands: []*cli.Command{
			RunCommand(),
			AlgorithmsCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.sortbench/config.yaml if present)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, table, json, yaml",
			Value:   "text",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
			Value: "warn",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
			Value: "text",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// setIn returns the innermost context in which the user set the flag
// name, or nil. Run flags exist both at the top level and on the run
// command, so "sortbench -n 5 run" sets size on the parent context only.
func setIn(c *cli.Context, name string) *cli.Context {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx
		}
	}
	return nil
}

// flagOverrides maps the flags the user set to config keys. Unset flags
// are left out so they cannot shadow env or file values with defaults.
func flagOverrides(c *cli.Context) map[string]any {
	m := make(map[string]any)

	if fc := setIn(c, "output"); fc != nil {
		m["output.format"] = fc.String("output")
	}
	if fc := setIn(c, "log-level"); fc != nil {
		m["log.level"] = fc.String("log-level")
	} else if fc := setIn(c, "verbose"); fc != nil && fc.Bool("verbose") {
		m["log.level"] = "debug"
	}
	if fc := setIn(c, "log-format"); fc != nil {
		m["log.format"] = fc.String("log-format")
	}

	if fc := setIn(c, "size"); fc != nil {
		m["bench.size"] = fc.Int("size")
	}
	if fc := setIn(c, "iterations"); fc != nil {
		m["bench.iterations"] = fc.Int("iterations")
	}
	if fc := setIn(c, "seed"); fc != nil {
		m["bench.seed"] = fc.Uint64("seed")
	}
	if fc := setIn(c, "metrics-file"); fc != nil {
		m["metrics.file"] = fc.String("metrics-file")
	}
	if fc := setIn(c, "no-progress"); fc != nil && fc.Bool("no-progress") {
		m["output.progress"] = false
	}

	return m
}

// loadConfig resolves the configuration for a command and installs the
// configured logger as the default.
func loadConfig(c *cli.Context) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter(c),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	logger.SetDefault(log)

	return cfg, log, nil
}

// outputFormat returns the validated report format of cfg.
func outputFormat(cfg *config.Config) (output.Format, error) {
	return output.ParseFormat(cfg.Output.Format)
}

// formatter returns the formatter for the configured format, honouring
// --wide for tables.
func formatter(c *cli.Context, format output.Format) output.Formatter {
	return output.NewFormatter(format, c.Bool("wide"))
}

// logExitError records a failed command at debug level with its domain
// error code, then applies the default exit-code handling.
func logExitError(c *cli.Context, err error) {
	if err == nil {
		return
	}
	args := []any{"command", c.Command.Name, "error", err}
	if code := domain.GetErrorCode(err); code != "" {
		args = append(args, "code", code)
	}
	logger.Debug("command failed", args...)
	cli.HandleExitCoder(err)
}

func writer(c *cli.Context) io.Writer {
	return c.App.Writer
}

func errWriter(c *cli.Context) io.Writer {
	return c.App.ErrWriter
}
