package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sessionColumns = `id, task_id, started_at, completed_at, duration_minutes, session_type, interrupted`

func scanSession(row rowScanner) (*PomodoroSession, error) {
	sess := &PomodoroSession{}
	var (
		taskID      sql.NullInt64
		startedAt   string
		completedAt sql.NullString
		sessionType string
		interrupted int
	)
	if err := row.Scan(&sess.ID, &taskID, &startedAt, &completedAt,
		&sess.DurationMinutes, &sessionType, &interrupted); err != nil {
		return nil, err
	}

	st, err := ParseSessionType(sessionType)
	if err != nil {
		return nil, fmt.Errorf("session %d: %v: %w", sess.ID, err, ErrCorrupt)
	}
	sess.SessionType = st

	if taskID.Valid {
		sess.TaskID = &taskID.Int64
	}
	sess.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	if completedAt.Valid {
		ts, _ := time.Parse(time.RFC3339, completedAt.String)
		sess.CompletedAt = &ts
	}
	sess.Interrupted = interrupted == 1
	return sess, nil
}

// CreateSession opens a new session. started_at is stamped here and never
// changes afterwards.
func (s *Store) CreateSession(in CreateSessionInput) (*PomodoroSession, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO pomodoro_sessions (task_id, started_at, duration_minutes, session_type)
		 VALUES (?, ?, ?, ?)`,
		in.TaskID, now, in.DurationMinutes, string(in.SessionType),
	)
	if err != nil {
		return nil, wrapQuery("insert session", err)
	}
	id, _ := res.LastInsertId()
	return s.getSession(id)
}

// CompleteSession marks an open session as completed. Completing a work
// session tied to a task also bumps that task's completed-pomodoro counter;
// both writes happen under one lock hold so no caller can observe the
// session completed with the counter still stale. A bump failure propagates
// rather than leaving the completion half-reported.
func (s *Store) CompleteSession(id int64) (*PomodoroSession, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	sess, err := s.finishSession(id, false)
	if err != nil {
		return nil, err
	}

	if sess.SessionType == SessionWork && sess.TaskID != nil {
		if err := s.incrementCompletedPomodoros(*sess.TaskID); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// InterruptSession marks an open session as interrupted.
func (s *Store) InterruptSession(id int64) (*PomodoroSession, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.finishSession(id, true)
}

// finishSession performs the one-way open → finished transition. A second
// finish on the same id is rejected with ErrSessionFinished; the first
// outcome's interrupted flag is never overwritten.
func (s *Store) finishSession(id int64, interrupted bool) (*PomodoroSession, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`UPDATE pomodoro_sessions SET completed_at = ?, interrupted = ?
		 WHERE id = ? AND completed_at IS NULL`,
		now, boolToInt(interrupted), id,
	)
	if err != nil {
		return nil, wrapQuery(fmt.Sprintf("finish session %d", id), err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Missing row or already finished; getSession distinguishes.
		if _, err := s.getSession(id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("finish session %d: %w", id, ErrSessionFinished)
	}
	return s.getSession(id)
}

func (s *Store) GetSession(id int64) (*PomodoroSession, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.getSession(id)
}

func (s *Store) getSession(id int64) (*PomodoroSession, error) {
	sess, err := scanSession(s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM pomodoro_sessions WHERE id = ?`, id,
	))
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			return nil, err
		}
		return nil, wrapQuery(fmt.Sprintf("get session %d", id), err)
	}
	return sess, nil
}

// ListSessionsByDateRange returns sessions whose start date falls between
// startDate and endDate inclusive, newest-first.
func (s *Store) ListSessionsByDateRange(startDate, endDate string) ([]PomodoroSession, error) {
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if err := validateDate(endDate); err != nil {
		return nil, err
	}

	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+` FROM pomodoro_sessions
		 WHERE DATE(started_at) BETWEEN ? AND ?
		 ORDER BY started_at DESC, id DESC`,
		startDate, endDate,
	)
	if err != nil {
		return nil, wrapQuery("list sessions", err)
	}
	defer rows.Close()

	var sessions []PomodoroSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// CountCompletedWorkSessions counts non-interrupted completed work sessions
// started on the given date.
func (s *Store) CountCompletedWorkSessions(date string) (int, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}
	release, err := s.acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	var n int
	if err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM pomodoro_sessions
		WHERE DATE(started_at) = ?
		  AND completed_at IS NOT NULL
		  AND interrupted = 0
		  AND session_type = 'work'`, date,
	).Scan(&n); err != nil {
		return 0, wrapQuery("count work sessions", err)
	}
	return n, nil
}

// SumFocusMinutes totals the durations of non-interrupted completed work
// sessions started on the given date; zero when nothing matches.
func (s *Store) SumFocusMinutes(date string) (int, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}
	release, err := s.acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	var total int
	if err := s.db.QueryRow(`
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM pomodoro_sessions
		WHERE DATE(started_at) = ?
		  AND completed_at IS NOT NULL
		  AND interrupted = 0
		  AND session_type = 'work'`, date,
	).Scan(&total); err != nil {
		return 0, wrapQuery("sum focus minutes", err)
	}
	return total, nil
}
