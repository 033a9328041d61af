package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored aliases.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, deps)
		},
	}
	return cmd
}

func runListCmd(cmd *cobra.Command, deps *Dependencies) error {
	records, err := deps.Manager.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases stored yet. Add one with 'nickurl add'."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Stored Aliases (%d):", len(records))))
	renderAliasTable(out, records)
	return nil
}

func renderAliasTable(out io.Writer, records []alias.Record) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Alias", "Pattern"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, r := range records {
		table.Append([]string{strconv.FormatInt(r.ID, 10), r.Alias, r.Pattern})
	}
	table.Render()
}
