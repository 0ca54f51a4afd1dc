package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/namefilter/pkg/wld"
)

func QuoteCommand() *cli.Command {
	return &cli.Command{
		Name:    "quote",
		Aliases: []string{"q"},
		Usage:   "Escape literals for use as regex patterns",
		Arguments: []cli.Argument{
			&cli.StringArgs{Name: "literals", Min: 1, Max: -1},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "join",
				Aliases: []string{"j"},
				Usage:   "print a single alternation matching any literal",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			literals := cmd.StringArgs("literals")
			if len(literals) == 0 {
				return fmt.Errorf("%w: literals", ErrMissingArgument)
			}

			w := cmd.Root().Writer

			if cmd.Bool("join") {
				_, err := fmt.Fprintln(w, wld.Alternation(literals))

				return err
			}

			for _, quoted := range wld.QuoteAll(literals) {
				if _, err := fmt.Fprintln(w, quoted); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
