package cli

import (
	"context"

	"github.com/dmitrijs2005/legacykeeper/internal/buildinfo"
	"github.com/dmitrijs2005/legacykeeper/internal/client/config"
	"github.com/dmitrijs2005/legacykeeper/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the legacy command tree. c holds the settings resolved by
// config.LoadConfig; the persistent flags are bound to it, so their help
// defaults are the values in effect and a flag given on the command line
// overrides them again.
func NewRootCmd(c *config.Config, log logging.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "legacy",
		Short:        "Record digital assets and confirm you are still around",
		Version:      buildinfo.Version(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, c, log, false, func(ctx context.Context, a *App) error {
				a.Run(ctx)
				return nil
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (JSON or YAML), read before the command line")
	pf.StringVarP(&c.DSN, "dsn", "d", c.DSN, "path to the vault database")
	pf.StringVarP(&c.ImagesDir, "images-dir", "m", c.ImagesDir, "directory for imported images")
	pf.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "log level (debug, info, warn, error); the logger is built before parsing")

	version := &cobra.Command{
		Use:   "build",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}

	root.AddCommand(newAssetsCmd(c, log), newHeartbeatCmd(c, log), version)
	return root
}

// withApp opens the vault for one command. One-shot commands run in an
// authenticated session; the interactive shell starts logged out.
func withApp(cmd *cobra.Command, c *config.Config, log logging.Logger, oneShot bool, fn func(context.Context, *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.ContextWith(ctx, "command", cmd.CommandPath())

	a, err := NewApp(ctx, c, log, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Warn(ctx, "close database", "err", cerr)
		}
	}()

	if oneShot {
		a.session.Login()
	}
	return fn(ctx, a)
}

func newAssetsCmd(c *config.Config, log logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Inspect recorded assets",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List assets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, c, log, true, func(ctx context.Context, a *App) error {
				return a.List(ctx)
			})
		},
	}

	var reveal bool
	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reveal {
				args = append(args, revealFlag)
			}
			return withApp(cmd, c, log, true, func(ctx context.Context, a *App) error {
				return a.Show(ctx, args)
			})
		},
	}
	show.Flags().BoolVar(&reveal, "reveal", false, "show the password in clear text")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one asset without asking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, c, log, true, func(ctx context.Context, a *App) error {
				return a.deleteAsset(ctx, args, false)
			})
		},
	}

	cmd.AddCommand(list, show, del)
	return cmd
}

func newHeartbeatCmd(c *config.Config, log logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Manage periodic check-ins",
	}

	action := func(use, short string, run func(context.Context, *App, []string) error, args cobra.PositionalArgs) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, c, log, true, func(ctx context.Context, a *App) error {
					return run(ctx, a, args)
				})
			},
		}
	}

	cmd.AddCommand(
		action("status", "Show check-in settings and the next check date",
			func(ctx context.Context, a *App, _ []string) error { return a.heartbeatStatus(ctx) }, cobra.NoArgs),
		action("confirm", "Record a check-in now",
			func(ctx context.Context, a *App, _ []string) error { return a.ConfirmAlive(ctx) }, cobra.NoArgs),
		action("enable", "Switch check-ins on",
			func(ctx context.Context, a *App, _ []string) error { return a.setHeartbeat(ctx, true) }, cobra.NoArgs),
		action("disable", "Switch check-ins off",
			func(ctx context.Context, a *App, _ []string) error { return a.setHeartbeat(ctx, false) }, cobra.NoArgs),
		action("frequency <monthly|quarterly>", "Set the check-in frequency",
			func(ctx context.Context, a *App, args []string) error { return a.Frequency(ctx, args) }, cobra.ExactArgs(1)),
	)
	return cmd
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, c *config.Config, log logging.Logger) int {
	if err := NewRootCmd(c, log).ExecuteContext(ctx); err != nil {
		log.Debug(ctx, "command failed", "err", err)
		return 1
	}
	return 0
}
