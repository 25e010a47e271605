package store

import "fmt"

// GetDailySummary aggregates one calendar day's productivity: tasks
// completed that day, completed non-interrupted work sessions, and their
// summed focus minutes. Always recomputed from current state, never stored.
func (s *Store) GetDailySummary(date string) (*DailySummary, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	tasks, err := s.CountTasksCompletedOn(date)
	if err != nil {
		return nil, err
	}
	pomodoros, err := s.CountCompletedWorkSessions(date)
	if err != nil {
		return nil, err
	}
	focus, err := s.SumFocusMinutes(date)
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:                    date,
		CompletedTasksCount:     tasks,
		CompletedPomodorosCount: pomodoros,
		TotalFocusMinutes:       focus,
	}, nil
}

// GetWeeklySummary returns one summary per calendar day from startDate
// through endDate inclusive, in ascending order. Days with no activity
// yield zero-valued entries. The date sequence is expanded by SQLite itself
// so range expansion and the per-day filters share one calendar.
func (s *Store) GetWeeklySummary(startDate, endDate string) ([]DailySummary, error) {
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if err := validateDate(endDate); err != nil {
		return nil, err
	}

	dates, err := s.expandDates(startDate, endDate)
	if err != nil {
		return nil, err
	}

	summaries := make([]DailySummary, 0, len(dates))
	for _, d := range dates {
		ds, err := s.GetDailySummary(d)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *ds)
	}
	return summaries, nil
}

func (s *Store) expandDates(startDate, endDate string) ([]string, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := s.db.Query(`
		WITH RECURSIVE dates(date) AS (
			SELECT DATE(?)
			UNION ALL
			SELECT DATE(date, '+1 day') FROM dates WHERE date < DATE(?)
		)
		SELECT date FROM dates`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("expand date range: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
