package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/nickurl/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"github.com/AntonioJCosta/nickurl/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the command for importing aliases from a YAML seed file.
func NewImportCommand(deps *Dependencies) *cobra.Command {
	var (
		all bool
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Interactively imports aliases from a YAML seed file.",
		Long: `Reads a list of {alias, pattern} entries from a YAML file (default
import.file, $HOME/.nickurl/aliases.yaml), lets you select which ones to
import, and stores each one through the usual validation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := deps.Config.Import.File
			if len(args) == 1 {
				path = args[0]
			}
			provider, err := predefinedaliases.NewYAMLProvider(path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor(fmt.Sprintf("Reading aliases from %s...", path)))
			return runImportCmd(cmd, deps, provider, all, yes)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Import every entry without prompting for a selection.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	return cmd
}

func runImportCmd(cmd *cobra.Command, deps *Dependencies, provider ports.PredefinedAliasProvider, all, yes bool) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	reader := bufio.NewReader(cmd.InOrStdin())

	loaded, err := provider.GetPredefinedAliases()
	if err != nil {
		return fmt.Errorf("failed to load aliases to import: %w", err)
	}
	if len(loaded) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases found. Ensure the file exists and lists entries with 'alias' and 'pattern'."))
		return nil
	}
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d alias(es).", len(loaded))))

	selected := loaded
	if !all {
		selected, err = chooseRecords(out, errOut, reader, loaded)
		if errors.Is(err, ErrFZFCancelled) {
			fmt.Fprintln(out, ui.InfoColor("Selection cancelled via fzf. No aliases will be imported."))
			return nil
		}
		if err != nil {
			fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Error during alias selection: %v", err)))
			return nil
		}
	}
	if len(selected) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases were selected to be imported."))
		return nil
	}

	if !yes && !all {
		fmt.Fprint(out, ui.PromptColor(fmt.Sprintf("Do you want to import these %d selected aliases? (yes/no): ", len(selected))))
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			return fmt.Errorf("failed to read user input: %w", err)
		}
		input = strings.TrimSpace(strings.ToLower(input))
		if input != "yes" && input != "y" {
			fmt.Fprintln(out, ui.InfoColor("Aborted. No aliases were imported."))
			return nil
		}
	}

	imported, rejected := importRecords(cmd, deps, selected)
	printImportOutcome(out, imported, rejected)
	return nil
}

// chooseRecords lets the user pick entries with fzf, falling back to a
// numbered list when fzf is unavailable or fails.
func chooseRecords(out, errOut io.Writer, reader *bufio.Reader, records []alias.Record) ([]alias.Record, error) {
	chosen, err := selectRecordsViaFZF(errOut, records)
	switch {
	case err == nil:
		return chosen, nil
	case errors.Is(err, ErrFZFCancelled):
		return nil, err
	case errors.Is(err, ErrFZFNotFound):
		fmt.Fprintln(out, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
	default:
		fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", err)))
	}
	return selectRecordsNumerically(out, reader, records)
}

func importRecords(cmd *cobra.Command, deps *Dependencies, records []alias.Record) (imported, rejected int) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(out, ui.InfoColor("\nImporting selected aliases..."))
	for _, r := range records {
		res := deps.Manager.Create(cmd.Context(), r.Alias, r.Pattern)
		if !res.Success {
			fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Skipped '%s': %s", r.Alias, res.Message)))
			rejected++
			continue
		}
		imported++
	}
	return imported, rejected
}

func printImportOutcome(out io.Writer, imported, rejected int) {
	if imported > 0 {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("\n%d alias(es) imported.", imported)))
	}
	if rejected > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d alias(es) were rejected (see details above).", rejected)))
	}
	if imported == 0 && rejected == 0 {
		fmt.Fprintln(out, ui.InfoColor("Nothing to import."))
	}
}
