package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/tomatotask/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Sessions   []jsonSession `json:"sessions,omitempty"`
	Tasks      []jsonTask    `json:"tasks,omitempty"`
}

type jsonSession struct {
	ID          int64  `json:"id"`
	Task        string `json:"task,omitempty"`
	TaskID      *int64 `json:"task_id,omitempty"`
	Type        string `json:"type"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at,omitempty"`
	Minutes     int    `json:"minutes"`
	Interrupted bool   `json:"interrupted"`
}

type jsonTask struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	Project            string `json:"project,omitempty"`
	EstimatedPomodoros int    `json:"estimated_pomodoros"`
	CompletedPomodoros int    `json:"completed_pomodoros"`
	Completed          bool   `json:"completed"`
	CompletedAt        string `json:"completed_at,omitempty"`
}

// SessionsToJSON writes a session history to path, resolving task titles
// through the given lookup map.
func SessionsToJSON(sessions []store.PomodoroSession, tasks map[int64]*store.Task, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
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

		out.Sessions = append(out.Sessions, jsonSession{
			ID:          sess.ID,
			Task:        title,
			TaskID:      sess.TaskID,
			Type:        string(sess.SessionType),
			StartedAt:   sess.StartedAt.Local().Format(time.RFC3339),
			CompletedAt: completedStr,
			Minutes:     sess.DurationMinutes,
			Interrupted: sess.Interrupted,
		})
	}

	return writeJSON(out, path)
}

// TasksToJSON writes the task list to path, resolving project names through
// the given lookup map.
func TasksToJSON(tasks []store.Task, projects map[int64]*store.Project, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(tasks),
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

		out.Tasks = append(out.Tasks, jsonTask{
			ID:                 t.ID,
			Title:              t.Title,
			Project:            project,
			EstimatedPomodoros: t.EstimatedPomodoros,
			CompletedPomodoros: t.CompletedPomodoros,
			Completed:          t.IsCompleted,
			CompletedAt:        completedStr,
		})
	}

	return writeJSON(out, path)
}

func writeJSON(out jsonExport, path string) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
