package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/sortbench/internal/cli/output"
	"github.com/yndnr/sortbench/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: versionAction,
	}
}

func versionAction(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}
	if format == output.FormatText {
		_, err := fmt.Fprintf(writer(c), "%s %s\n", c.App.Name, buildinfo.String())
		return err
	}
	return formatter(c, format).Format(writer(c), buildinfo.Get())
}
