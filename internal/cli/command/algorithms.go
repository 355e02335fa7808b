package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/sortbench/internal/cli/output"
	"github.com/yndnr/sortbench/internal/core/domain"
	"github.com/yndnr/sortbench/pkg/sorting"
)

// AlgorithmsCommand returns the algorithms listing command.
func AlgorithmsCommand() *cli.Command {
	return &cli.Command{
		Name:    "algorithms",
		Aliases: []string{"algs"},
		Usage:   "List the benchmarked algorithms in report order",
		Action:  algorithmsAction,
	}
}

func algorithmsAction(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	sorters := sorting.All()
	algs := make([]domain.Algorithm, len(sorters))
	for i, s := range sorters {
		algs[i] = s.Algorithm
	}

	return formatter(c, format).Format(writer(c), algs)
}
