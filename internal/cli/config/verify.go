package config

import (
	"fmt"
	"strings"

	"github.com/yndnr/sortbench/internal/core/domain"
	"github.com/yndnr/sortbench/internal/telemetry/logger"
)

// OutputFormats lists the accepted report formats.
var OutputFormats = []string{"text", "table", "json", "yaml"}

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyBench(cfg); err != nil {
		return err
	}
	if err := verifyOutput(&cfg.Output); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyBench(cfg *Config) error {
	if cfg.sizeSet && cfg.Bench.Size < 0 {
		return domain.ErrInvalidSize.WithDetails(fmt.Sprintf("bench.size = %d", cfg.Bench.Size))
	}
	if cfg.iterationsSet && cfg.Bench.Iterations < 1 {
		return domain.ErrInvalidIterations.WithDetails(fmt.Sprintf("bench.iterations = %d", cfg.Bench.Iterations))
	}
	return nil
}

func verifyOutput(cfg *OutputConfig) error {
	for _, f := range OutputFormats {
		if cfg.Format == f {
			return nil
		}
	}
	return domain.ErrInvalidConfig.WithDetails(fmt.Sprintf(
		"output.format %q, want one of %s", cfg.Format, strings.Join(OutputFormats, ", ")))
}

func verifyLog(cfg *LogConfig) error {
	if !logger.ValidLevel(cfg.Level) {
		return domain.ErrInvalidConfig.WithDetails(fmt.Sprintf("log.level %q", cfg.Level))
	}
	switch cfg.Format {
	case "text", "json":
		return nil
	}
	return domain.ErrInvalidConfig.WithDetails(fmt.Sprintf("log.format %q, want text or json", cfg.Format))
}
