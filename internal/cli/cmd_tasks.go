package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/tomatotask/internal/store"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskShowCmd())
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskEditCmd())
	cmd.AddCommand(newTaskRmCmd())
	cmd.AddCommand(newTaskToggleCmd())
	return cmd
}

func printTask(t *store.Task) {
	status := " "
	if t.IsCompleted {
		status = "x"
	}
	fmt.Printf("[%s] %-4d %s  (%d/%d pomodoros)\n",
		status, t.ID, t.Title, t.CompletedPomodoros, t.EstimatedPomodoros)
}

func newTaskListCmd() *cobra.Command {
	var projectID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				tasks []store.Task
				err   error
			)
			if cmd.Flags().Changed("project") {
				tasks, err = st.ListTasksByProject(projectID)
			} else {
				tasks, err = st.ListTasks()
			}
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(tasks)
			}
			for i := range tasks {
				printTask(&tasks[i])
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&projectID, "project", 0, "only tasks belonging to this project id")
	return cmd
}

func newTaskShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := st.GetTask(id)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(t)
			}
			printTask(t)
			if t.Description != nil {
				fmt.Printf("     %s\n", *t.Description)
			}
			return nil
		},
	}
}

func newTaskAddCmd() *cobra.Command {
	var (
		description string
		projectID   int64
		estimate    int
	)
	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := store.CreateTaskInput{Title: args[0], EstimatedPomodoros: estimate}
			if description != "" {
				in.Description = &description
			}
			if cmd.Flags().Changed("project") {
				in.ProjectID = &projectID
			}
			t, err := st.CreateTask(in)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(t)
			}
			fmt.Printf("created task %d: %s\n", t.ID, t.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "desc", "", "task description")
	cmd.Flags().Int64Var(&projectID, "project", 0, "project id")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "estimated pomodoros")
	return cmd
}

func newTaskEditCmd() *cobra.Command {
	var (
		title       string
		description string
		projectID   int64
		estimate    int
		noProject   bool
	)
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task (completion state is untouched)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// The store replaces every editable field at once, so merge
			// the flags onto the current row here.
			current, err := st.GetTask(id)
			if err != nil {
				return err
			}
			in := store.UpdateTaskInput{
				Title:              current.Title,
				Description:        current.Description,
				ProjectID:          current.ProjectID,
				EstimatedPomodoros: current.EstimatedPomodoros,
			}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &description
			}
			if cmd.Flags().Changed("project") {
				in.ProjectID = &projectID
			}
			if noProject {
				in.ProjectID = nil
			}
			if cmd.Flags().Changed("estimate") {
				in.EstimatedPomodoros = estimate
			}

			t, err := st.UpdateTask(id, in)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(t)
			}
			printTask(t)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "desc", "", "new description")
	cmd.Flags().Int64Var(&projectID, "project", 0, "new project id")
	cmd.Flags().BoolVar(&noProject, "no-project", false, "detach from its project")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "new estimated pomodoros")
	return cmd
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteTask(id); err != nil {
				return err
			}
			if !jsonOut {
				fmt.Printf("deleted task %d\n", id)
			}
			return nil
		},
	}
}

func newTaskToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Toggle a task's completion state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := st.ToggleTaskCompletion(id)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(t)
			}
			printTask(t)
			return nil
		},
	}
}
