package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"github.com/AntonioJCosta/nickurl/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "add <alias> <pattern>",
		Short: "Store a new alias.",
		Long: `Stores an alias and the URL pattern it expands to. Quote both arguments.

Tokens: <$0>..<$9> bind one query word each, in order of appearance;
<$&> binds every remaining word and must come last.

Examples:
  nickurl add 'yt <$1>' 'youtube.com/results?search_query=<$1>'
  nickurl add 'g <$&>' 'https://www.google.com/search?q=<$&>'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := deps.Manager.Create(cmd.Context(), args[0], args[1])
			return reportResult(cmd, res, fmt.Sprintf("Alias '%s' added.", args[0]))
		},
	}
}

// NewUpdateCommand creates the 'update' subcommand.
func NewUpdateCommand(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <alias> <pattern>",
		Short: "Replace the alias and pattern of a stored alias.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := deps.Manager.Update(cmd.Context(), id, args[1], args[2])
			return reportResult(cmd, res, fmt.Sprintf("Alias %d updated.", id))
		},
	}
}

// NewRemoveCommand creates the 'rm' subcommand.
func NewRemoveCommand(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a stored alias by id.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := deps.Manager.Delete(cmd.Context(), id)
			return reportResult(cmd, res, fmt.Sprintf("Alias %d deleted.", id))
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid alias id %q", raw)
	}
	return id, nil
}

func reportResult(cmd *cobra.Command, res ports.Result, successLine string) error {
	if !res.Success {
		return errors.New(res.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(successLine))
	return nil
}
