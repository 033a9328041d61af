package cli

import (
	"github.com/AntonioJCosta/nickurl/internal/config"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Dependencies are the services a command runs against. They are built once
// per invocation, after flags are parsed.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    ports.AliasStore
	Manager  ports.AliasManagementService
	Resolver ports.AliasResolutionService
	Opener   ports.URLOpener
}

// Bootstrap builds Dependencies from the --config path and --verbose flag.
type Bootstrap func(configPath string, verbose bool) (*Dependencies, error)

func NewRootCommand(version string, bootstrap Bootstrap) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	deps := &Dependencies{}

	rootCmd := &cobra.Command{
		Use:   "nickurl",
		Short: "nickurl expands short commands into full URLs.",
		Long: `nickurl stores URL aliases such as "g <$&>" or "yt <$1>" and expands
queries like "yt cats" into the matching URL. Queries that match no alias
fall through to a default web search.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := bootstrap(configPath, verbose)
			if err != nil {
				return err
			}
			*deps = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if deps.Store != nil {
				if err := deps.Store.Close(); err != nil && deps.Logger != nil {
					deps.Logger.Warn("closing alias store failed", zap.Error(err))
				}
			}
			if deps.Logger != nil {
				_ = deps.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config file (default $HOME/.nickurl/config.yaml).")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")

	rootCmd.AddCommand(NewServeCommand(deps))
	rootCmd.AddCommand(NewAddCommand(deps))
	rootCmd.AddCommand(NewUpdateCommand(deps))
	rootCmd.AddCommand(NewRemoveCommand(deps))
	rootCmd.AddCommand(NewListCommand(deps))
	rootCmd.AddCommand(NewResolveCommand(deps))
	rootCmd.AddCommand(NewImportCommand(deps))

	return rootCmd
}
