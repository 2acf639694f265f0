package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/database"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			formatter := cli.NewFormatter(cmd)

			// Opening the database applies pending migrations
			a, err := cli.AppFromContext(ctx)
			if err != nil {
				return formatter.Fail(err)
			}

			version, err := database.SchemaVersion(ctx, a.DB())
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(map[string]int{"schema_version": version},
				fmt.Sprintf("Database schema at version %d", version))
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
