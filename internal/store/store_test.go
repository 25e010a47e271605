package store

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// insertSessionAt is a test helper that writes a session row directly so
// tests can place sessions on arbitrary dates (started_at is immutable
// through the API).
func insertSessionAt(t *testing.T, s *Store, startedAt time.Time, typ SessionType, completed, interrupted bool, minutes int) int64 {
	t.Helper()
	var completedAt any
	if completed {
		completedAt = startedAt.Add(time.Duration(minutes) * time.Minute).Format(time.RFC3339)
	}
	res, err := s.db.Exec(
		`INSERT INTO pomodoro_sessions (task_id, started_at, completed_at, duration_minutes, session_type, interrupted)
		 VALUES (NULL, ?, ?, ?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339), completedAt, minutes, string(typ), boolToInt(interrupted),
	)
	if err != nil {
		t.Fatalf("insert session: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// ============================================================
// Store initialization & migrations
// ============================================================

func TestNewMemory(t *testing.T) {
	s := newTestStore(t)

	var version int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version); err != nil {
		t.Fatal(err)
	}
	if version != 1 {
		t.Fatalf("expected schema version 1, got %d", version)
	}

	var appliedAt string
	if err := s.db.QueryRow(`SELECT applied_at FROM schema_version WHERE version = 1`).Scan(&appliedAt); err != nil {
		t.Fatal(err)
	}
	if appliedAt == "" {
		t.Fatal("applied_at should be recorded")
	}
}

func TestNewWithPath(t *testing.T) {
	path := t.TempDir() + "/sub/tomatotask.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen; the migrator must treat the schema as already current.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	var count int
	if err := s2.db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1 recorded migration after reopen, got %d", count)
	}
}

func TestForeignKeysEnabled(t *testing.T) {
	s := newTestStore(t)

	var fk int
	s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fk)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestCloseRejectsFurtherUse(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := s.ListProjects(); !errors.Is(err, ErrAccessUnavailable) {
		t.Fatalf("expected ErrAccessUnavailable after close, got %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

// ============================================================
// Projects
// ============================================================

func TestCreateAndGetProject(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreateProject(CreateProjectInput{Name: "Thesis", Color: strPtr("#FF0000")})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if p.Name != "Thesis" || p.Color == nil || *p.Color != "#FF0000" {
		t.Fatalf("unexpected project: %+v", p)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatal("timestamps should be set")
	}
}

func TestCreateProjectWithoutColor(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreateProject(CreateProjectInput{Name: "Chores"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Color != nil {
		t.Fatalf("expected nil color, got %q", *p.Color)
	}
}

func TestListProjectsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, _ := s.CreateProject(CreateProjectInput{Name: "First"})
	second, _ := s.CreateProject(CreateProjectInput{Name: "Second"})

	projects, err := s.ListProjects()
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != second.ID || projects[1].ID != first.ID {
		t.Fatalf("expected newest-first order, got %d then %d", projects[0].ID, projects[1].ID)
	}
}

func TestDeleteProjectAbsentIsNoOp(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteProject(12345); err != nil {
		t.Fatalf("deleting absent project should be a no-op, got %v", err)
	}
}

func TestDeleteProjectDetachesTasks(t *testing.T) {
	s := newTestStore(t)

	p, _ := s.CreateProject(CreateProjectInput{Name: "Doomed"})
	task, err := s.CreateTask(CreateTaskInput{Title: "Survivor", ProjectID: &p.ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteProject(p.ID); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetTask(task.ID)
	if err != nil {
		t.Fatalf("task should survive project deletion: %v", err)
	}
	if got.ProjectID != nil {
		t.Fatalf("expected project_id nulled, got %d", *got.ProjectID)
	}
}

// ============================================================
// Tasks
// ============================================================

func TestCreateTaskDefaults(t *testing.T) {
	s := newTestStore(t)

	task, err := s.CreateTask(CreateTaskInput{Title: "Test", EstimatedPomodoros: 3})
	if err != nil {
		t.Fatal(err)
	}
	if task.Title != "Test" || task.EstimatedPomodoros != 3 {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.IsCompleted {
		t.Fatal("new task should not be completed")
	}
	if task.CompletedPomodoros != 0 {
		t.Fatalf("expected 0 completed pomodoros, got %d", task.CompletedPomodoros)
	}
	if task.CompletedAt != nil {
		t.Fatal("new task should have nil completed_at")
	}
	if task.Description != nil || task.ProjectID != nil {
		t.Fatalf("optional fields should be nil: %+v", task)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetTask(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTaskReplacesFields(t *testing.T) {
	s := newTestStore(t)

	p, _ := s.CreateProject(CreateProjectInput{Name: "Home"})
	task, _ := s.CreateTask(CreateTaskInput{Title: "Old", EstimatedPomodoros: 1})

	// Complete it first; the update must not touch completion state.
	if _, err := s.ToggleTaskCompletion(task.ID); err != nil {
		t.Fatal(err)
	}

	updated, err := s.UpdateTask(task.ID, UpdateTaskInput{
		Title:              "New",
		Description:        strPtr("details"),
		ProjectID:          &p.ID,
		EstimatedPomodoros: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "New" || updated.Description == nil || *updated.Description != "details" {
		t.Fatalf("unexpected task after update: %+v", updated)
	}
	if updated.ProjectID == nil || *updated.ProjectID != p.ID {
		t.Fatal("project reference not updated")
	}
	if updated.EstimatedPomodoros != 5 {
		t.Fatalf("expected estimate 5, got %d", updated.EstimatedPomodoros)
	}
	if !updated.IsCompleted || updated.CompletedAt == nil {
		t.Fatal("update must not touch completion state")
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateTask(999, UpdateTaskInput{Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Gone"})
	if err := s.DeleteTask(task.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetTask(task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, _ := s.CreateTask(CreateTaskInput{Title: "First"})
	second, _ := s.CreateTask(CreateTaskInput{Title: "Second"})

	tasks, err := s.ListTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Fatal("expected newest-first order")
	}
}

func TestListTasksByProject(t *testing.T) {
	s := newTestStore(t)

	p, _ := s.CreateProject(CreateProjectInput{Name: "Work"})
	s.CreateTask(CreateTaskInput{Title: "Unassigned"})
	mine, _ := s.CreateTask(CreateTaskInput{Title: "Mine", ProjectID: &p.ID})

	tasks, err := s.ListTasksByProject(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != mine.ID {
		t.Fatalf("expected only the project's task, got %+v", tasks)
	}
}

func TestToggleTaskCompletion(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Toggle me"})

	toggled, err := s.ToggleTaskCompletion(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.IsCompleted {
		t.Fatal("expected task completed after first toggle")
	}
	if toggled.CompletedAt == nil {
		t.Fatal("completed_at must be set when is_completed is true")
	}

	back, err := s.ToggleTaskCompletion(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if back.IsCompleted {
		t.Fatal("expected task reopened after second toggle")
	}
	if back.CompletedAt != nil {
		t.Fatal("completed_at must be cleared when is_completed is false")
	}
}

func TestToggleTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ToggleTaskCompletion(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncrementCompletedPomodoros(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Counter"})
	if err := s.IncrementCompletedPomodoros(task.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.IncrementCompletedPomodoros(task.ID); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetTask(task.ID)
	if got.CompletedPomodoros != 2 {
		t.Fatalf("expected counter 2, got %d", got.CompletedPomodoros)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Contended"})

	const workers = 25
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.IncrementCompletedPomodoros(task.ID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}

	got, _ := s.GetTask(task.ID)
	if got.CompletedPomodoros != workers {
		t.Fatalf("expected counter %d, got %d", workers, got.CompletedPomodoros)
	}
}

// ============================================================
// Sessions
// ============================================================

func TestCreateSessionOpen(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.CreateSession(CreateSessionInput{DurationMinutes: 25, SessionType: SessionWork})
	if err != nil {
		t.Fatal(err)
	}
	if sess.CompletedAt != nil {
		t.Fatal("new session should be open")
	}
	if sess.StartedAt.IsZero() {
		t.Fatal("started_at should be stamped at creation")
	}
	if sess.SessionType != SessionWork || sess.DurationMinutes != 25 {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestCompleteSession(t *testing.T) {
	s := newTestStore(t)

	sess, _ := s.CreateSession(CreateSessionInput{DurationMinutes: 25, SessionType: SessionWork})
	done, err := s.CompleteSession(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if done.CompletedAt == nil {
		t.Fatal("completed_at should be set")
	}
	if done.Interrupted {
		t.Fatal("normal completion should not mark interrupted")
	}
}

func TestInterruptSession(t *testing.T) {
	s := newTestStore(t)

	sess, _ := s.CreateSession(CreateSessionInput{DurationMinutes: 5, SessionType: SessionShortBreak})
	stopped, err := s.InterruptSession(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stopped.CompletedAt == nil || !stopped.Interrupted {
		t.Fatalf("expected interrupted session, got %+v", stopped)
	}
}

func TestSecondFinishRejected(t *testing.T) {
	s := newTestStore(t)

	sess, _ := s.CreateSession(CreateSessionInput{DurationMinutes: 25, SessionType: SessionWork})
	if _, err := s.CompleteSession(sess.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := s.InterruptSession(sess.ID); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}

	// The first outcome must be preserved.
	got, _ := s.GetSession(sess.ID)
	if got.Interrupted {
		t.Fatal("second finish must not flip the interrupted flag")
	}
}

func TestFinishSessionNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CompleteSession(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompleteWorkSessionBumpsTask(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Focus target"})
	sess, _ := s.CreateSession(CreateSessionInput{TaskID: &task.ID, DurationMinutes: 25, SessionType: SessionWork})

	if _, err := s.CompleteSession(sess.ID); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetTask(task.ID)
	if got.CompletedPomodoros != 1 {
		t.Fatalf("expected counter 1 after work completion, got %d", got.CompletedPomodoros)
	}
}

func TestCompleteBreakSessionDoesNotBump(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Untouched"})
	sess, _ := s.CreateSession(CreateSessionInput{TaskID: &task.ID, DurationMinutes: 5, SessionType: SessionShortBreak})

	if _, err := s.CompleteSession(sess.ID); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetTask(task.ID)
	if got.CompletedPomodoros != 0 {
		t.Fatalf("break completion must not bump the counter, got %d", got.CompletedPomodoros)
	}
}

func TestCompleteWorkSessionWithoutTask(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Bystander"})
	sess, _ := s.CreateSession(CreateSessionInput{DurationMinutes: 25, SessionType: SessionWork})

	if _, err := s.CompleteSession(sess.ID); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetTask(task.ID)
	if got.CompletedPomodoros != 0 {
		t.Fatal("taskless completion must not touch any counter")
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetSession(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSessionCorruptType(t *testing.T) {
	s := newTestStore(t)

	// Simulate invariant drift in data at rest: slip a row past the CHECK.
	if _, err := s.db.Exec(`PRAGMA ignore_check_constraints = ON`); err != nil {
		t.Fatal(err)
	}
	res, err := s.db.Exec(
		`INSERT INTO pomodoro_sessions (started_at, duration_minutes, session_type) VALUES (?, 25, 'nap')`,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatal(err)
	}
	s.db.Exec(`PRAGMA ignore_check_constraints = OFF`)
	id, _ := res.LastInsertId()

	if _, err := s.GetSession(id); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestListSessionsByDateRange(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC()
	old := insertSessionAt(t, s, now.AddDate(0, 0, -3), SessionWork, true, false, 25)
	recent := insertSessionAt(t, s, now.AddDate(0, 0, -1), SessionWork, true, false, 25)
	insertSessionAt(t, s, now.AddDate(0, 0, -10), SessionWork, true, false, 25)

	from := now.AddDate(0, 0, -3).Format("2006-01-02")
	to := now.AddDate(0, 0, -1).Format("2006-01-02")
	sessions, err := s.ListSessionsByDateRange(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions in range (both ends inclusive), got %d", len(sessions))
	}
	if sessions[0].ID != recent || sessions[1].ID != old {
		t.Fatal("expected newest-first order")
	}
}

func TestListSessionsInvalidDate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ListSessionsByDateRange("not-a-date", today()); !errors.Is(err, ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

func TestCountAndSumEmptyDate(t *testing.T) {
	s := newTestStore(t)

	n, err := s.CountCompletedWorkSessions("2001-01-01")
	if err != nil || n != 0 {
		t.Fatalf("expected 0 count without error, got %d, %v", n, err)
	}
	total, err := s.SumFocusMinutes("2001-01-01")
	if err != nil || total != 0 {
		t.Fatalf("expected 0 sum without error, got %d, %v", total, err)
	}
}

func TestAggregatesIgnoreInterruptedAndBreaks(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC()
	insertSessionAt(t, s, now, SessionWork, true, false, 25)
	insertSessionAt(t, s, now, SessionWork, true, true, 25)        // interrupted
	insertSessionAt(t, s, now, SessionShortBreak, true, false, 5)  // break
	insertSessionAt(t, s, now, SessionWork, false, false, 25)      // still open

	n, err := s.CountCompletedWorkSessions(today())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 counted session, got %d", n)
	}
	total, err := s.SumFocusMinutes(today())
	if err != nil {
		t.Fatal(err)
	}
	if total != 25 {
		t.Fatalf("expected 25 focus minutes, got %d", total)
	}
}

// ============================================================
// Settings
// ============================================================

func TestDefaultSettings(t *testing.T) {
	s := newTestStore(t)

	cfg, err := s.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkDuration != 25 || cfg.ShortBreakDuration != 5 || cfg.LongBreakDuration != 15 {
		t.Fatalf("unexpected default durations: %+v", cfg)
	}
	if cfg.PomodorosUntilLongBreak != 4 {
		t.Fatalf("expected 4 pomodoros until long break, got %d", cfg.PomodorosUntilLongBreak)
	}
	if cfg.Language != "en" || cfg.Theme != "light" {
		t.Fatalf("unexpected default language/theme: %q/%q", cfg.Language, cfg.Theme)
	}
	if cfg.AutoStartBreaks || cfg.AutoStartPomodoros {
		t.Fatal("auto-start flags should default to false")
	}
}

func TestUpdateSettings(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.UpdateSettings(UpdateSettingsInput{
		WorkDuration:            30,
		ShortBreakDuration:      5,
		LongBreakDuration:       15,
		PomodorosUntilLongBreak: 4,
		Language:                "fr",
		Theme:                   "light",
		NotificationSound:       "default",
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.WorkDuration != 30 || updated.Language != "fr" {
		t.Fatalf("update not applied: %+v", updated)
	}

	// Untouched fields keep their values on re-read.
	again, err := s.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if again.WorkDuration != 30 || again.Language != "fr" {
		t.Fatalf("update not persisted: %+v", again)
	}
	if again.ShortBreakDuration != 5 || again.LongBreakDuration != 15 ||
		again.PomodorosUntilLongBreak != 4 || again.Theme != "light" {
		t.Fatalf("unrelated fields changed: %+v", again)
	}
}

func TestUpdateSettingsOutOfRange(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateSettings(UpdateSettingsInput{
		WorkDuration:            200, // above the 1-180 bound
		ShortBreakDuration:      5,
		LongBreakDuration:       15,
		PomodorosUntilLongBreak: 4,
		Language:                "en",
		Theme:                   "light",
		NotificationSound:       "default",
	})
	if !errors.Is(err, ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

func TestUpdateSettingsInvalidLanguage(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateSettings(UpdateSettingsInput{
		WorkDuration:            25,
		ShortBreakDuration:      5,
		LongBreakDuration:       15,
		PomodorosUntilLongBreak: 4,
		Language:                "xx",
		Theme:                   "light",
		NotificationSound:       "default",
	})
	if !errors.Is(err, ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

// ============================================================
// Summaries
// ============================================================

func TestDailySummaryEmpty(t *testing.T) {
	s := newTestStore(t)

	ds, err := s.GetDailySummary("2001-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if ds.CompletedTasksCount != 0 || ds.CompletedPomodorosCount != 0 || ds.TotalFocusMinutes != 0 {
		t.Fatalf("expected zero-valued summary, got %+v", ds)
	}
}

func TestDailySummaryCounts(t *testing.T) {
	s := newTestStore(t)

	task, _ := s.CreateTask(CreateTaskInput{Title: "Today's win"})
	if _, err := s.ToggleTaskCompletion(task.ID); err != nil {
		t.Fatal(err)
	}

	sess, _ := s.CreateSession(CreateSessionInput{TaskID: &task.ID, DurationMinutes: 25, SessionType: SessionWork})
	if _, err := s.CompleteSession(sess.ID); err != nil {
		t.Fatal(err)
	}

	ds, err := s.GetDailySummary(today())
	if err != nil {
		t.Fatal(err)
	}
	if ds.CompletedTasksCount != 1 {
		t.Fatalf("expected 1 completed task, got %d", ds.CompletedTasksCount)
	}
	if ds.CompletedPomodorosCount != 1 {
		t.Fatalf("expected 1 completed pomodoro, got %d", ds.CompletedPomodorosCount)
	}
	if ds.TotalFocusMinutes != 25 {
		t.Fatalf("expected 25 focus minutes, got %d", ds.TotalFocusMinutes)
	}
}

func TestWeeklySummarySingleDay(t *testing.T) {
	s := newTestStore(t)

	d := today()
	week, err := s.GetWeeklySummary(d, d)
	if err != nil {
		t.Fatal(err)
	}
	if len(week) != 1 {
		t.Fatalf("expected 1 entry for a single-day range, got %d", len(week))
	}

	daily, _ := s.GetDailySummary(d)
	if week[0] != *daily {
		t.Fatalf("single-day weekly entry %+v != daily %+v", week[0], *daily)
	}
}

func TestWeeklySummaryAscendingWithZeroDays(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC()
	insertSessionAt(t, s, now.AddDate(0, 0, -2), SessionWork, true, false, 25)

	start := now.AddDate(0, 0, -2).Format("2006-01-02")
	end := now.AddDate(0, 0, -1).Format("2006-01-02")
	week, err := s.GetWeeklySummary(start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(week) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(week))
	}
	if week[0].Date != start || week[1].Date != end {
		t.Fatalf("expected ascending dates %s, %s, got %s, %s", start, end, week[0].Date, week[1].Date)
	}
	if week[0].CompletedPomodorosCount != 1 {
		t.Fatalf("expected activity on the first day, got %+v", week[0])
	}
	if week[1].CompletedPomodorosCount != 0 || week[1].TotalFocusMinutes != 0 {
		t.Fatalf("quiet day should be zero-valued, got %+v", week[1])
	}
}

func TestWeeklySummaryInvalidDate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetWeeklySummary("2026-13-99", today()); !errors.Is(err, ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}
