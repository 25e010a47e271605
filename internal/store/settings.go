package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const settingsColumns = `work_duration, short_break_duration, long_break_duration,
	pomodoros_until_long_break, language, theme, notification_sound,
	auto_start_breaks, auto_start_pomodoros, updated_at`

// GetSettings returns the singleton settings row created at migration time.
// A missing row means the schema itself is damaged.
func (s *Store) GetSettings() (*Settings, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.getSettings()
}

func (s *Store) getSettings() (*Settings, error) {
	cfg := &Settings{}
	var autoBreaks, autoPomodoros int
	var updatedAt string
	err := s.db.QueryRow(`SELECT ` + settingsColumns + ` FROM settings WHERE id = 1`).Scan(
		&cfg.WorkDuration, &cfg.ShortBreakDuration, &cfg.LongBreakDuration,
		&cfg.PomodorosUntilLongBreak, &cfg.Language, &cfg.Theme,
		&cfg.NotificationSound, &autoBreaks, &autoPomodoros, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings row missing: %w", ErrCorrupt)
		}
		return nil, wrapQuery("get settings", err)
	}
	cfg.AutoStartBreaks = autoBreaks == 1
	cfg.AutoStartPomodoros = autoPomodoros == 1
	cfg.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return cfg, nil
}

// UpdateSettings replaces every field at once and returns the re-read row;
// there are no partial updates. Range and enumeration violations are
// rejected by the table's CHECK constraints, never clamped.
func (s *Store) UpdateSettings(in UpdateSettingsInput) (*Settings, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(
		`UPDATE settings
		 SET work_duration = ?, short_break_duration = ?, long_break_duration = ?,
		     pomodoros_until_long_break = ?, language = ?, theme = ?,
		     notification_sound = ?, auto_start_breaks = ?, auto_start_pomodoros = ?,
		     updated_at = ?
		 WHERE id = 1`,
		in.WorkDuration, in.ShortBreakDuration, in.LongBreakDuration,
		in.PomodorosUntilLongBreak, in.Language, in.Theme,
		in.NotificationSound, boolToInt(in.AutoStartBreaks), boolToInt(in.AutoStartPomodoros),
		now,
	); err != nil {
		return nil, wrapQuery("update settings", err)
	}
	return s.getSettings()
}
