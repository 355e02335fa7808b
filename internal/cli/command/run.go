package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/sortbench/internal/cli/config"
	"github.com/yndnr/sortbench/internal/cli/output"
	"github.com/yndnr/sortbench/internal/cli/prompt"
	"github.com/yndnr/sortbench/internal/core/service"
	"github.com/yndnr/sortbench/internal/telemetry/logger"
	"github.com/yndnr/sortbench/internal/telemetry/metric"
	"github.com/yndnr/sortbench/pkg/itemgen"
)

// RunCommand returns the benchmark command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Generate a dataset and benchmark every algorithm on it",
		Description: `Generates N random items (a letter and two digits, e.g. K07) and
sorts them with each algorithm K times, reporting the average time per
algorithm. Missing size or iteration count is asked for on stdin.

Examples:
  sortbench run -n 1000 -i 10
  sortbench run -n 50 -i 3 --seed 42 -o json
  SORTBENCH_BENCH_ITERATIONS=5 sortbench run -n 200`,
		Flags:  runFlags(),
		Action: runAction,
	}
}

// runFlags are accepted by the run command and at the top level.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"n"},
			Usage:   "Number of items to generate (prompted if unset)",
		},
		&cli.IntFlag{
			Name:    "iterations",
			Aliases: []string{"i"},
			Usage:   "Number of iterations to average over (prompted if unset)",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Dataset seed for reproducible runs (0 = random)",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics in text format to this file",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "Do not draw the progress bar",
		},
	}
}

func runAction(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("unknown command %q", c.Args().First())
	}

	cfg, log, err := loadConfig(c)
	if err != nil {
		return err
	}
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	// Prompts stay on stdout for the text report, as part of the dialogue.
	// Machine-readable formats keep stdout clean.
	promptOut := writer(c)
	if format != output.FormatText {
		promptOut = errWriter(c)
	}
	if err := resolveMissing(cfg, prompt.NewWithIO(c.App.Reader, promptOut)); err != nil {
		return err
	}

	gen := itemgen.New(cfg.Bench.Seed)
	data := gen.Generate(cfg.Bench.Size)
	log.Debug("dataset generated",
		"items", len(data),
		"seed", gen.Seed(),
	)

	out := writer(c)
	if format == output.FormatText {
		if err := output.WriteOriginal(out, data); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	opts := []service.Option{service.WithLogger(log)}

	var reg *metric.Registry
	if cfg.Metrics.File != "" {
		reg = metric.NewRegistry().RegisterRuntime()
		opts = append(opts, service.WithRecorder(reg))
	}

	var bar *output.ProgressBar
	if cfg.Output.Progress && format == output.FormatText {
		bar = output.NewProgressBar(errWriter(c), "Benchmarking")
		opts = append(opts, service.WithProgress(bar.Update))
	}

	report, err := service.NewBenchmark(opts...).Run(c.Context, data, cfg.Bench.Iterations)
	if err != nil {
		return err
	}
	if bar != nil {
		bar.Finish()
	}
	report.Seed = gen.Seed()

	if err := renderRun(out, format, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if reg != nil {
		if err := reg.WriteTextfile(cfg.Metrics.File); err != nil {
			return err
		}
		logger.L(logger.WithRunID(c.Context, report.RunID)).Info("metrics written", "path", cfg.Metrics.File)
	}

	return nil
}

// resolveMissing asks for the size and iteration count that no config
// source provided, in that order.
func resolveMissing(cfg *config.Config, p *prompt.Prompter) error {
	if !cfg.SizeSet() {
		n, err := p.Size()
		if err != nil {
			return err
		}
		cfg.SetSize(n)
	}
	if !cfg.IterationsSet() {
		n, err := p.Iterations()
		if err != nil {
			return err
		}
		cfg.SetIterations(n)
	}
	return nil
}

// renderRun writes the report. The text report's original data section
// was written before the run.
func renderRun(w io.Writer, format output.Format, r *service.Report) error {
	if format == output.FormatText {
		return output.WriteResults(w, r)
	}
	return output.RenderReport(w, format, r)
}
