package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/namefilter/internal/client/apiclient"
	"github.com/zhulik/namefilter/pkg/codec"
	"github.com/zhulik/namefilter/pkg/filter"
	"github.com/zhulik/pal"
)

func FilterCommand() *cli.Command {
	return &cli.Command{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "manage filters",
		Commands: []*cli.Command{
			filterList(),
			filterGet(),
			filterAdd(),
			filterUpdate(),
			filterDelete(),
			filterEval(),
		},
	}
}

func filterList() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls", "l"},
		Usage:   "List filter ids",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return invokeClient(ctx, func(client *apiclient.Client) error {
				ids, err := client.ListFilters(ctx)
				if err != nil {
					return err
				}

				for _, id := range ids {
					fmt.Fprintln(cmd.Root().Writer, id)
				}

				return nil
			})
		},
	}
}

func filterGet() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Aliases:   []string{"g"},
		Usage:     "Print a filter",
		Arguments: filterIDArg(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   string(codec.FormatYAML),
				Usage:   "output format, json or yaml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := codec.Format(cmd.String("output"))
			if format != codec.FormatJSON && format != codec.FormatYAML {
				return fmt.Errorf("%w: output %q", ErrInvalidFlag, format)
			}

			return validateFilterIDAndInvokeClient(ctx, cmd, func(id string, client *apiclient.Client) error {
				f, err := client.GetFilter(ctx, id)
				if err != nil {
					return err
				}

				out, err := codec.Marshal(format, f)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.Root().Writer, string(out))

				return err
			})
		},
	}
}

func filterAdd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Aliases:   []string{"a"},
		Usage:     "Add a filter from a JSON or YAML file",
		Arguments: filterFileArg(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return loadFilterAndInvokeClient(ctx, cmd, func(f *filter.Filter, client *apiclient.Client) error {
				if err := client.CreateFilter(ctx, f); err != nil {
					return err
				}

				fmt.Fprintf(cmd.Root().Writer, "Filter %s created successfully\n", f.ID)

				return nil
			})
		},
	}
}

func filterUpdate() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Aliases:   []string{"u"},
		Usage:     "Replace a filter from a JSON or YAML file",
		Arguments: filterFileArg(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return loadFilterAndInvokeClient(ctx, cmd, func(f *filter.Filter, client *apiclient.Client) error {
				if err := client.UpdateFilter(ctx, f); err != nil {
					return err
				}

				fmt.Fprintf(cmd.Root().Writer, "Filter %s updated successfully\n", f.ID)

				return nil
			})
		},
	}
}

func filterDelete() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"d"},
		Usage:     "Delete a filter",
		Arguments: filterIDArg(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return validateFilterIDAndInvokeClient(ctx, cmd, func(id string, client *apiclient.Client) error {
				if err := client.DeleteFilter(ctx, id); err != nil {
					return err
				}

				fmt.Fprintf(cmd.Root().Writer, "Filter %s deleted successfully\n", id)

				return nil
			})
		},
	}
}

func filterEval() *cli.Command {
	return &cli.Command{
		Name:    "eval",
		Aliases: []string{"e"},
		Usage:   "Check whether a filter selects a class and method",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
			&cli.StringArg{Name: "class"},
			&cli.StringArg{Name: "method"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			className := cmd.StringArg("class")
			if className == "" {
				return fmt.Errorf("%w: class", ErrMissingArgument)
			}

			return validateFilterIDAndInvokeClient(ctx, cmd, func(id string, client *apiclient.Client) error {
				matched, err := client.EvaluateFilter(ctx, id, className, cmd.StringArg("method"))
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.Root().Writer, matched)

				return err
			})
		},
	}
}

func filterIDArg() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:   "id",
			Config: cli.StringConfig{},
		},
	}
}

func filterFileArg() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:   "file",
			Config: cli.StringConfig{},
		},
	}
}

func invokeClient(ctx context.Context, f func(*apiclient.Client) error) error {
	client := pal.MustInvoke[*apiclient.Client](ctx, nil)

	return f(client)
}

func validateFilterIDAndInvokeClient(ctx context.Context, cmd *cli.Command, f func(string, *apiclient.Client) error) error { //nolint:lll
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: id", ErrMissingArgument)
	}

	return invokeClient(ctx, func(client *apiclient.Client) error {
		return f(id, client)
	})
}

func loadFilterAndInvokeClient(ctx context.Context, cmd *cli.Command, f func(*filter.Filter, *apiclient.Client) error) error { //nolint:lll
	file := cmd.StringArg("file")
	if file == "" {
		return fmt.Errorf("%w: file", ErrMissingArgument)
	}

	flt, err := LoadFilter(file)
	if err != nil {
		return err
	}

	return invokeClient(ctx, func(client *apiclient.Client) error {
		return f(flt, client)
	})
}

// LoadFilter reads and validates a filter from a JSON or YAML file.
func LoadFilter(path string) (*filter.Filter, error) {
	f, err := codec.UnmarshalFromFile[filter.Filter](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter from %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("filter in %s: %w", path, err)
	}

	return &f, nil
}
