package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/nickurl/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(deps *Dependencies) *cobra.Command {
	var (
		quiet bool
		open  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <query...>",
		Short: "Print the URL a query expands to.",
		Long: `Expands a query the same way the /search endpoint does, without
redirecting. All arguments are joined into one query. With --open the
URL is handed to the default browser.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := deps.Resolver.Lookup(cmd.Context(), strings.Join(args, " "))
			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, res.URL)
			} else {
				fmt.Fprintln(out, ui.URLColor(res.URL))
				detail := fmt.Sprintf("(%s)", res.Outcome)
				if res.AliasID != 0 {
					detail = fmt.Sprintf("(%s via alias %d)", res.Outcome, res.AliasID)
				}
				fmt.Fprintln(out, ui.DetailColor(detail))
			}
			if !open {
				return nil
			}
			if deps.Opener == nil {
				return fmt.Errorf("opening URLs is not available")
			}
			if err := deps.Opener.Open(cmd.Context(), res.URL); err != nil {
				return fmt.Errorf("could not open browser: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the URL.")
	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the URL in the default browser.")
	return cmd
}
