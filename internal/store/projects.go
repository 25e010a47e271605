package store

import (
	"database/sql"
	"fmt"
	"time"
)

const projectColumns = `id, name, color, created_at, updated_at`

// CreateProject inserts a project and returns the materialized row.
func (s *Store) CreateProject(in CreateProjectInput) (*Project, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO projects (name, color, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		in.Name, in.Color, now, now,
	)
	if err != nil {
		return nil, wrapQuery("insert project", err)
	}
	id, _ := res.LastInsertId()
	return s.getProject(id)
}

func (s *Store) GetProject(id int64) (*Project, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.getProject(id)
}

func (s *Store) getProject(id int64) (*Project, error) {
	p := &Project{}
	var color sql.NullString
	var createdAt, updatedAt string
	err := s.db.QueryRow(
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &color, &createdAt, &updatedAt)
	if err != nil {
		return nil, wrapQuery(fmt.Sprintf("get project %d", id), err)
	}
	if color.Valid {
		p.Color = &color.String
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return p, nil
}

// ListProjects returns every project, newest-created first.
func (s *Store) ListProjects() ([]Project, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := s.db.Query(
		`SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, wrapQuery("list projects", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var color sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &color, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if color.Valid {
			p.Color = &color.String
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project. Tasks referencing it survive with
// project_id cleared (ON DELETE SET NULL); deleting an absent id is a
// silent no-op.
func (s *Store) DeleteProject(id int64) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	if _, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id); err != nil {
		return wrapQuery(fmt.Sprintf("delete project %d", id), err)
	}
	return nil
}
