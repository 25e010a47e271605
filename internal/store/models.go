package store

import (
	"fmt"
	"time"
)

// Project groups tasks. Deleting a project detaches its tasks (project_id
// nulled) rather than deleting them.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateProjectInput struct {
	Name  string
	Color *string
}

type Task struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description"`
	ProjectID          *int64     `json:"projectId"`
	EstimatedPomodoros int        `json:"estimatedPomodoros"`
	CompletedPomodoros int        `json:"completedPomodoros"`
	IsCompleted        bool       `json:"isCompleted"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	CompletedAt        *time.Time `json:"completedAt"`
}

type CreateTaskInput struct {
	Title              string
	Description        *string
	ProjectID          *int64
	EstimatedPomodoros int
}

// UpdateTaskInput replaces every editable field at once. Completion state
// is owned by ToggleTaskCompletion and is never touched by an update.
type UpdateTaskInput struct {
	Title              string
	Description        *string
	ProjectID          *int64
	EstimatedPomodoros int
}

// SessionType is the closed set of pomodoro session kinds, stored as text.
type SessionType string

const (
	SessionWork       SessionType = "work"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// ParseSessionType decodes a stored or user-supplied session type string.
func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case SessionWork, SessionShortBreak, SessionLongBreak:
		return SessionType(s), nil
	}
	return "", fmt.Errorf("invalid session type %q", s)
}

// PomodoroSession is one timed interval. A session is open while
// CompletedAt is nil; finishing it (completed or interrupted) is one-way.
type PomodoroSession struct {
	ID              int64       `json:"id"`
	TaskID          *int64      `json:"taskId"`
	StartedAt       time.Time   `json:"startedAt"`
	CompletedAt     *time.Time  `json:"completedAt"`
	DurationMinutes int         `json:"durationMinutes"`
	SessionType     SessionType `json:"sessionType"`
	Interrupted     bool        `json:"interrupted"`
}

type CreateSessionInput struct {
	TaskID          *int64
	DurationMinutes int
	SessionType     SessionType
}

// Settings is the singleton configuration row (id fixed to 1).
type Settings struct {
	WorkDuration            int       `json:"workDuration"`
	ShortBreakDuration      int       `json:"shortBreakDuration"`
	LongBreakDuration       int       `json:"longBreakDuration"`
	PomodorosUntilLongBreak int       `json:"pomodorosUntilLongBreak"`
	Language                string    `json:"language"`
	Theme                   string    `json:"theme"`
	NotificationSound       string    `json:"notificationSound"`
	AutoStartBreaks         bool      `json:"autoStartBreaks"`
	AutoStartPomodoros      bool      `json:"autoStartPomodoros"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// UpdateSettingsInput carries a full replacement value; there are no
// partial updates of the settings row.
type UpdateSettingsInput struct {
	WorkDuration            int
	ShortBreakDuration      int
	LongBreakDuration       int
	PomodorosUntilLongBreak int
	Language                string
	Theme                   string
	NotificationSound       string
	AutoStartBreaks         bool
	AutoStartPomodoros      bool
}

// DailySummary is a derived value, computed on demand and never persisted.
type DailySummary struct {
	Date                    string `json:"date"`
	CompletedTasksCount     int    `json:"completedTasksCount"`
	CompletedPomodorosCount int    `json:"completedPomodorosCount"`
	TotalFocusMinutes       int    `json:"totalFocusMinutes"`
}

// validateDate checks a calendar-date parameter. Dates travel as YYYY-MM-DD
// strings, the same form SQLite's DATE() yields for stored timestamps.
func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, ErrConstraint)
	}
	return nil
}
