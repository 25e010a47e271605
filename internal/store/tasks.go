package store

import (
	"database/sql"
	"fmt"
	"time"
)

const taskColumns = `id, title, description, project_id, estimated_pomodoros,
	completed_pomodoros, is_completed, created_at, updated_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*Task, error) {
	t := &Task{}
	var (
		description sql.NullString
		projectID   sql.NullInt64
		isCompleted int
		createdAt   string
		updatedAt   string
		completedAt sql.NullString
	)
	if err := row.Scan(&t.ID, &t.Title, &description, &projectID,
		&t.EstimatedPomodoros, &t.CompletedPomodoros, &isCompleted,
		&createdAt, &updatedAt, &completedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		t.Description = &description.String
	}
	if projectID.Valid {
		t.ProjectID = &projectID.Int64
	}
	t.IsCompleted = isCompleted == 1
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	if completedAt.Valid {
		ts, _ := time.Parse(time.RFC3339, completedAt.String)
		t.CompletedAt = &ts
	}
	return t, nil
}

// CreateTask inserts a task and returns the materialized row. New tasks
// start incomplete with a zero pomodoro counter.
func (s *Store) CreateTask(in CreateTaskInput) (*Task, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO tasks (title, description, project_id, estimated_pomodoros, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Title, in.Description, in.ProjectID, in.EstimatedPomodoros, now, now,
	)
	if err != nil {
		return nil, wrapQuery("insert task", err)
	}
	id, _ := res.LastInsertId()
	return s.getTask(id)
}

func (s *Store) GetTask(id int64) (*Task, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.getTask(id)
}

func (s *Store) getTask(id int64) (*Task, error) {
	t, err := scanTask(s.db.QueryRow(
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	))
	if err != nil {
		return nil, wrapQuery(fmt.Sprintf("get task %d", id), err)
	}
	return t, nil
}

// ListTasks returns every task, newest-created first.
func (s *Store) ListTasks() ([]Task, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.queryTasks(
		`SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC, id DESC`,
	)
}

// ListTasksByProject returns a project's tasks, newest-created first.
func (s *Store) ListTasksByProject(projectID int64) ([]Task, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.queryTasks(
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at DESC, id DESC`,
		projectID,
	)
}

func (s *Store) queryTasks(query string, args ...any) ([]Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrapQuery("list tasks", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// UpdateTask replaces title, description, project reference and estimate,
// refreshing updated_at. Completion state is untouched.
func (s *Store) UpdateTask(id int64, in UpdateTaskInput) (*Task, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, project_id = ?,
		        estimated_pomodoros = ?, updated_at = ?
		 WHERE id = ?`,
		in.Title, in.Description, in.ProjectID, in.EstimatedPomodoros, now, id,
	); err != nil {
		return nil, wrapQuery(fmt.Sprintf("update task %d", id), err)
	}
	return s.getTask(id)
}

func (s *Store) DeleteTask(id int64) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	if _, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return wrapQuery(fmt.Sprintf("delete task %d", id), err)
	}
	return nil
}

// ToggleTaskCompletion flips is_completed and keeps completed_at in lock
// step: set when the task becomes complete, cleared when it reopens. The
// read and the write happen under one lock hold so concurrent toggles on
// the same id serialize cleanly.
func (s *Store) ToggleTaskCompletion(id int64) (*Task, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	t, err := s.getTask(id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var completedAt any
	if !t.IsCompleted {
		completedAt = now
	}
	if _, err := s.db.Exec(
		`UPDATE tasks SET is_completed = ?, completed_at = ?, updated_at = ? WHERE id = ?`,
		boolToInt(!t.IsCompleted), completedAt, now, id,
	); err != nil {
		return nil, wrapQuery(fmt.Sprintf("toggle task %d", id), err)
	}
	return s.getTask(id)
}

// IncrementCompletedPomodoros bumps the counter by one. There is no upper
// bound and no existence check; it runs as a side effect of completing a
// work session.
func (s *Store) IncrementCompletedPomodoros(id int64) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()
	return s.incrementCompletedPomodoros(id)
}

func (s *Store) incrementCompletedPomodoros(id int64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(
		`UPDATE tasks SET completed_pomodoros = completed_pomodoros + 1, updated_at = ? WHERE id = ?`,
		now, id,
	); err != nil {
		return wrapQuery(fmt.Sprintf("increment pomodoros for task %d", id), err)
	}
	return nil
}

// CountTasksCompletedOn counts tasks whose completion date equals the given
// calendar date.
func (s *Store) CountTasksCompletedOn(date string) (int, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}
	release, err := s.acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	var n int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM tasks WHERE DATE(completed_at) = ?`, date,
	).Scan(&n); err != nil {
		return 0, wrapQuery("count completed tasks", err)
	}
	return n, nil
}
