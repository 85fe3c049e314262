package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/catalog/internal/app"
	"github.com/five82/catalog/internal/config"
	"github.com/five82/catalog/internal/prefs"
)

// newRootCmd builds the command tree. Flags bind into one app.Options value
// shared by every subcommand.
func newRootCmd() *cobra.Command {
	opts := &app.Options{}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Terminal product catalog",
		Long: `catalog keeps a small product list (name, category, price) in a local
file or SQLite database.

Run without arguments to open the interactive view. The subcommands work on the
same catalog without a terminal UI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newEditCmd(opts),
		newRemoveCmd(opts),
	)
	return root
}

// withEnv opens the catalog for the duration of fn.
func withEnv(ctx context.Context, opts *app.Options, fn func(*app.Env) error) error {
	env, err := app.Open(ctx, *opts)
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}
