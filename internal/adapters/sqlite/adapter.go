// Package sqlite provides a SQLite-backed implementation of the session repository port.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

// Adapter implements the repository port for SQLite
type Adapter struct {
	db *sql.DB
}

var _ ports.SessionRepository = (*Adapter)(nil)

var openDB = sql.Open

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := openDB("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// ":memory:" databases exist per connection
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	// Auto-migrate on startup for local dev
	if err := adapter.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

const versionColumns = `id, number, story_id, title, tagline, summary, script, genre, story_mood,
	length, method, mood_label, intensity, poster_description, saved_at`

func (a *Adapter) SaveVersion(ctx context.Context, v domain.StoryVersion) (domain.StoryVersion, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StoryVersion{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(number), 0) + 1 FROM story_versions").Scan(&v.Number); err != nil {
		return domain.StoryVersion{}, fmt.Errorf("failed to allocate version number: %w", err)
	}

	st := v.Story
	_, err = tx.ExecContext(ctx, `INSERT INTO story_versions (`+versionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Number, st.ID, st.Title, st.Tagline, st.Summary, st.Script, string(st.Genre), st.Mood,
		string(st.Length), st.Method, v.MoodLabel, v.Intensity, v.PosterDescription, formatTime(v.SavedAt),
	)
	if err != nil {
		if isConstraintError(err) {
			return domain.StoryVersion{}, fmt.Errorf("version %s: %w", v.ID, domain.ErrDuplicate)
		}
		return domain.StoryVersion{}, fmt.Errorf("failed to save version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.StoryVersion{}, fmt.Errorf("transaction commit failed: %w", err)
	}
	return v, nil
}

func (a *Adapter) ListVersions(ctx context.Context) ([]domain.StoryVersion, error) {
	rows, err := a.db.QueryContext(ctx, "SELECT "+versionColumns+" FROM story_versions ORDER BY number ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	var out []domain.StoryVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate versions: %w", err)
	}
	return out, nil
}

func (a *Adapter) GetVersion(ctx context.Context, id string) (domain.StoryVersion, error) {
	row := a.db.QueryRowContext(ctx, "SELECT "+versionColumns+" FROM story_versions WHERE id = ?", id)
	v, err := scanVersion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StoryVersion{}, fmt.Errorf("version %s: %w", id, domain.ErrNotFound)
	}
	return v, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVersion(s scanner) (domain.StoryVersion, error) {
	var (
		v             domain.StoryVersion
		genre, length string
		savedAt       string
	)
	err := s.Scan(
		&v.ID, &v.Number, &v.Story.ID, &v.Story.Title, &v.Story.Tagline, &v.Story.Summary,
		&v.Story.Script, &genre, &v.Story.Mood, &length, &v.Story.Method,
		&v.MoodLabel, &v.Intensity, &v.PosterDescription, &savedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StoryVersion{}, err
		}
		return domain.StoryVersion{}, fmt.Errorf("failed to scan version: %w", err)
	}
	v.Story.Genre = domain.Genre(genre)
	v.Story.Length = domain.LengthBucket(length)
	if v.SavedAt, err = parseTime(savedAt); err != nil {
		return domain.StoryVersion{}, fmt.Errorf("failed to parse saved_at: %w", err)
	}
	return v, nil
}

func (a *Adapter) AddCollaborator(ctx context.Context, c domain.Collaborator) error {
	_, err := a.db.ExecContext(ctx,
		"INSERT INTO collaborators (email, role, permissions, added_at) VALUES (?, ?, ?, ?)",
		c.Email, string(c.Role), strings.Join(c.Permissions, ","), formatTime(c.AddedAt),
	)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("collaborator %s: %w", c.Email, domain.ErrDuplicate)
		}
		return fmt.Errorf("failed to add collaborator: %w", err)
	}
	return nil
}

func (a *Adapter) RemoveCollaborator(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := a.db.ExecContext(ctx, "DELETE FROM collaborators WHERE email = ?", email)
	if err != nil {
		return fmt.Errorf("failed to remove collaborator: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove collaborator: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("collaborator %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

func (a *Adapter) ListCollaborators(ctx context.Context) ([]domain.Collaborator, error) {
	rows, err := a.db.QueryContext(ctx, "SELECT email, role, permissions, added_at FROM collaborators ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var out []domain.Collaborator
	for rows.Next() {
		var c domain.Collaborator
		var role, perms, addedAt string
		if err := rows.Scan(&c.Email, &role, &perms, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		c.Role = domain.Role(role)
		if perms != "" {
			c.Permissions = strings.Split(perms, ",")
		}
		if c.AddedAt, err = parseTime(addedAt); err != nil {
			return nil, fmt.Errorf("failed to parse added_at: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collaborators: %w", err)
	}
	return out, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS story_versions (
		id TEXT PRIMARY KEY,
		number INTEGER NOT NULL UNIQUE,
		story_id TEXT,
		title TEXT NOT NULL,
		tagline TEXT,
		summary TEXT,
		script TEXT NOT NULL,
		genre TEXT NOT NULL,
		story_mood TEXT,
		length TEXT,
		method TEXT,
		mood_label TEXT NOT NULL,
		intensity INTEGER NOT NULL,
		poster_description TEXT,
		saved_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS collaborators (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		permissions TEXT NOT NULL,
		added_at TEXT NOT NULL
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func isConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
