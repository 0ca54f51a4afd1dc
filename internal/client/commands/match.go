package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/namefilter/internal/client/apiclient"
	"github.com/zhulik/namefilter/pkg/wld"
	"github.com/zhulik/pal"
)

func MatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Aliases:   []string{"m"},
		Usage:     "Match a subject against a pattern",
		ArgsUsage: "SUBJECT PATTERN",
		Arguments: []cli.Argument{
			&cli.StringArgs{Name: "operands", Min: 0, Max: 2}, //nolint:mnd
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Value:   string(wld.ModeWildcard),
				Usage:   "pattern syntax, one of " + modeNames(),
			},
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "match on the server",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			subject, pattern, err := subjectAndPattern(cmd)
			if err != nil {
				return err
			}

			mode, ok := wld.ParseMode(cmd.String("mode"))
			if !ok {
				return fmt.Errorf("%w: mode %q, expected one of %s", ErrInvalidFlag, cmd.String("mode"), modeNames())
			}

			var matched bool

			if cmd.Bool("remote") {
				client := pal.MustInvoke[*apiclient.Client](ctx, nil)
				matched, err = client.Match(ctx, mode, subject, pattern)
			} else {
				matched, err = wld.PatternMatches(mode, subject, pattern)
			}

			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, matched)

			return err
		},
	}
}

// subjectAndPattern reads both positional arguments. Either may be an empty
// string but both must be given.
func subjectAndPattern(cmd *cli.Command) (string, string, error) {
	operands := cmd.StringArgs("operands")
	if len(operands) != 2 { //nolint:mnd
		return "", "", fmt.Errorf("%w: expected SUBJECT and PATTERN", ErrMissingArgument)
	}

	return operands[0], operands[1], nil
}

func modeNames() string {
	names := make([]string, 0, len(wld.Modes))
	for _, mode := range wld.Modes {
		names = append(names, string(mode))
	}

	return strings.Join(names, ", ")
}
