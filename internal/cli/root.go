package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/homedash/internal/config"
)

// App holds everything the CLI commands need to run.
type App struct {
	Config config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the top-level "homedash" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "homedash",
		Short:         "Personal dashboard server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newMigrateCmd(app),
	)

	return root
}
