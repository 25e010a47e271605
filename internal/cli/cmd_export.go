package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/tomatotask/internal/export"
	"github.com/sadopc/tomatotask/internal/store"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to CSV or JSON files",
	}
	cmd.AddCommand(newExportSessionsCmd())
	cmd.AddCommand(newExportTasksCmd())
	return cmd
}

func newExportSessionsCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "sessions FROM TO",
		Short: "Export the session history for a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := st.ListSessionsByDateRange(args[0], args[1])
			if err != nil {
				return err
			}
			tasks, err := st.ListTasks()
			if err != nil {
				return err
			}
			byID := make(map[int64]*store.Task, len(tasks))
			for i := range tasks {
				byID[tasks[i].ID] = &tasks[i]
			}

			switch format {
			case "csv":
				err = export.SessionsToCSV(sessions, byID, out)
			case "json":
				err = export.SessionsToJSON(sessions, byID, out)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
			if err != nil {
				return err
			}
			if !jsonOut {
				fmt.Printf("exported %d sessions to %s\n", len(sessions), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&out, "out", "sessions.csv", "output file path")
	return cmd
}

func newExportTasksCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Export the task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := st.ListTasks()
			if err != nil {
				return err
			}
			projects, err := st.ListProjects()
			if err != nil {
				return err
			}
			byID := make(map[int64]*store.Project, len(projects))
			for i := range projects {
				byID[projects[i].ID] = &projects[i]
			}

			switch format {
			case "csv":
				err = export.TasksToCSV(tasks, byID, out)
			case "json":
				err = export.TasksToJSON(tasks, byID, out)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
			if err != nil {
				return err
			}
			if !jsonOut {
				fmt.Printf("exported %d tasks to %s\n", len(tasks), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&out, "out", "tasks.csv", "output file path")
	return cmd
}
