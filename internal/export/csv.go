package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/tomatotask/internal/store"
)

// SessionsToCSV writes a session history to path, resolving task titles
// through the given lookup map.
func SessionsToCSV(sessions []store.PomodoroSession, tasks map[int64]*store.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Task", "Type", "Started", "Completed", "Minutes", "Interrupted"}); err != nil {
		return err
	}

	for _, sess := range sessions {
		title := ""
		if sess.TaskID != nil {
			if t, ok := tasks[*sess.TaskID]; ok {
				title = t.Title
			}
		}
		completedStr := ""
		if sess.CompletedAt != nil {
			completedStr = sess.CompletedAt.Local().Format(time.RFC3339)
		}

		row := []string{
			fmt.Sprintf("%d", sess.ID),
			title,
			string(sess.SessionType),
			sess.StartedAt.Local().Format(time.RFC3339),
			completedStr,
			fmt.Sprintf("%d", sess.DurationMinutes),
			fmt.Sprintf("%t", sess.Interrupted),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// TasksToCSV writes the task list to path, resolving project names through
// the given lookup map.
func TasksToCSV(tasks []store.Task, projects map[int64]*store.Project, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Title", "Project", "Estimated", "Completed Pomodoros", "Done", "Completed At"}); err != nil {
		return err
	}

	for _, t := range tasks {
		project := ""
		if t.ProjectID != nil {
			if p, ok := projects[*t.ProjectID]; ok {
				project = p.Name
			}
		}
		completedStr := ""
		if t.CompletedAt != nil {
			completedStr = t.CompletedAt.Local().Format(time.RFC3339)
		}

		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.Title,
			project,
			fmt.Sprintf("%d", t.EstimatedPomodoros),
			fmt.Sprintf("%d", t.CompletedPomodoros),
			fmt.Sprintf("%t", t.IsCompleted),
			completedStr,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
