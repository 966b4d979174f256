package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"blog-backend/pkg/logger"
)

func (a *app) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the storage schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.c.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Schema migrated", map[string]interface{}{"driver": a.c.Config.Storage.Driver})
			if a.json() {
				return a.printJSON(map[string]string{"status": "migrated"})
			}
			fmt.Fprintln(a.out, "Schema is up to date")
			return nil
		},
	}
}
