package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/tomatotask/internal/store"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectAddCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := st.ListProjects()
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(projects)
			}
			for _, p := range projects {
				color := ""
				if p.Color != nil {
					color = "  " + *p.Color
				}
				fmt.Printf("%-4d %s%s\n", p.ID, p.Name, color)
			}
			return nil
		},
	}
}

func newProjectAddCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := store.CreateProjectInput{Name: args[0]}
			if color != "" {
				in.Color = &color
			}
			p, err := st.CreateProject(in)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(p)
			}
			fmt.Printf("created project %d: %s\n", p.ID, p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "display color, e.g. #FF6347")
	return cmd
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a project (its tasks are kept and detached)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteProject(id); err != nil {
				return err
			}
			if !jsonOut {
				fmt.Printf("deleted project %d\n", id)
			}
			return nil
		},
	}
}
