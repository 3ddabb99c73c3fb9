package cmd

import (
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"task-manager-api.com/task-manager-api/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd, func(provider *goose.Provider) error {
			results, err := provider.Up(cmd.Context())
			for _, r := range results {
				printf(cmd, "OK   %s (%s)\n", r.Source.Path, r.Duration)
			}
			if err != nil {
				return err
			}
			if len(results) == 0 {
				printf(cmd, "no pending migrations\n")
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd, func(provider *goose.Provider) error {
			result, err := provider.Down(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "DOWN %s (%s)\n", result.Source.Path, result.Duration)
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd, func(provider *goose.Provider) error {
			statuses, err := provider.Status(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				printf(cmd, "%-20s %s\n", applied, s.Source.Path)
			}
			return nil
		})
	},
}

func withProvider(cmd *cobra.Command, fn func(*goose.Provider) error) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	provider, err := migrations.NewProvider(cfg.DatabaseDriver, sqlDB)
	if err != nil {
		return err
	}

	return fn(provider)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
