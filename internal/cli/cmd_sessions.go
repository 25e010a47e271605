package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/tomatotask/internal/store"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage pomodoro sessions",
	}
	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionCompleteCmd())
	cmd.AddCommand(newSessionInterruptCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionListCmd())
	return cmd
}

func printSession(sess *store.PomodoroSession) {
	state := "open"
	if sess.CompletedAt != nil {
		state = "completed"
		if sess.Interrupted {
			state = "interrupted"
		}
	}
	task := ""
	if sess.TaskID != nil {
		task = fmt.Sprintf("  task %d", *sess.TaskID)
	}
	fmt.Printf("%-4d %-12s %3dm  %s  %s%s\n",
		sess.ID, sess.SessionType, sess.DurationMinutes,
		sess.StartedAt.Local().Format("2006-01-02 15:04"), state, task)
}

func newSessionStartCmd() *cobra.Command {
	var (
		taskID  int64
		minutes int
		typ     string
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionType, err := store.ParseSessionType(typ)
			if err != nil {
				return err
			}

			// Without an explicit duration, use the configured one for
			// this session type.
			if !cmd.Flags().Changed("minutes") {
				cfg, err := st.GetSettings()
				if err != nil {
					return err
				}
				switch sessionType {
				case store.SessionWork:
					minutes = cfg.WorkDuration
				case store.SessionShortBreak:
					minutes = cfg.ShortBreakDuration
				case store.SessionLongBreak:
					minutes = cfg.LongBreakDuration
				}
			}

			in := store.CreateSessionInput{DurationMinutes: minutes, SessionType: sessionType}
			if cmd.Flags().Changed("task") {
				in.TaskID = &taskID
			}
			sess, err := st.CreateSession(in)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(sess)
			}
			printSession(sess)
			return nil
		},
	}
	cmd.Flags().Int64Var(&taskID, "task", 0, "task this session works on")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "session length (default: configured duration)")
	cmd.Flags().StringVar(&typ, "type", "work", "session type: work, short_break or long_break")
	return cmd
}

func newSessionCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Complete an open session (work sessions credit their task)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sess, err := st.CompleteSession(id)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(sess)
			}
			printSession(sess)
			return nil
		},
	}
}

func newSessionInterruptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interrupt ID",
		Short: "Interrupt an open session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sess, err := st.InterruptSession(id)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(sess)
			}
			printSession(sess)
			return nil
		},
	}
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sess, err := st.GetSession(id)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(sess)
			}
			printSession(sess)
			return nil
		},
	}
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [FROM] [TO]",
		Short: "List sessions in a date range (inclusive; defaults to today)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := time.Now().Format("2006-01-02")
			from, to := today, today
			if len(args) >= 1 {
				from = args[0]
				to = args[0]
			}
			if len(args) == 2 {
				to = args[1]
			}

			sessions, err := st.ListSessionsByDateRange(from, to)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(sessions)
			}
			for i := range sessions {
				printSession(&sessions[i])
			}
			return nil
		},
	}
}
