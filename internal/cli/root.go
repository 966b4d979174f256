// Package cli implements the blogctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"
)

const outputJSON = "json"

// app carries the state shared by every command of one invocation.
type app struct {
	output string
	out    io.Writer
	c      *container.Container
}

// newRoot builds a fresh command tree. Storage is opened lazily in
// PersistentPreRunE, so help output works without a database. The caller
// closes the returned app once the command has run.
func newRoot() (*cobra.Command, *app) {
	a := &app{out: os.Stdout}

	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Manage blog authors and posts",
		Long:          `Create and update authors and posts. Every field is validated before it reaches storage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.output != "" && !slices.Contains([]string{outputJSON}, a.output) {
				return fmt.Errorf("invalid output format: %s (valid: %s)", a.output, outputJSON)
			}
			a.out = cmd.OutOrStdout()
			if !cmd.Runnable() || cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd.Context(), cmd.Name() != "migrate")
		},
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format (json)")

	root.AddCommand(
		a.newMigrateCmd(),
		a.newAuthorCmd(),
		a.newPostCmd(),
		a.newCheckCmd(),
	)
	return root, a
}

func (a *app) close() {
	if a.c != nil {
		a.c.Cleanup()
		a.c = nil
	}
}

// setup loads config, opens storage and, when services are needed, builds
// them against the already migrated schema.
func (a *app) setup(ctx context.Context, services bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	a.c = c

	if services {
		return c.InitServices(ctx)
	}
	return nil
}

// Execute runs blogctl and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root, a := newRoot()
	defer a.close()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
