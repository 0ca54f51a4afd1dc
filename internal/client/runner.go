package client

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/namefilter/internal/client/commands"
)

type Runner struct{}

func (c *Runner) Run(ctx context.Context) error {
	return NewCommand().Run(ctx, os.Args)
}

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "nfcli",
		Usage: "namefilter client",
		Commands: []*cli.Command{
			commands.MatchCommand(),
			commands.QuoteCommand(),
			commands.FilterCommand(),
		},
	}
}
