package cmd

import (
	"github.com/spf13/cobra"

	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

var demoTasks = []struct {
	title       string
	description string
}{
	{"First Task", "This is the content of the first task."},
	{"Second Task", "This is the content of the second task."},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		if cfg.AutoMigrate {
			if err := migrate(cmd.Context(), cfg.DatabaseDriver, db); err != nil {
				return err
			}
		}

		repo := repository.NewTaskRepository(db)
		for _, demo := range demoTasks {
			task, err := repo.CreateTask(cmd.Context(), demo.title, demo.description)
			if err != nil {
				return err
			}
			printf(cmd, "created task %d: %s\n", task.ID, task.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
