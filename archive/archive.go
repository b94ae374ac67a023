// Package archive persists published commitments in a local SQLite
// database so prior publications stay auditable after the in-memory tree
// is discarded. Each publish appends one row; the root is unique because a
// rebuilt record set is a new commitment version with a new root.
package archive

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	_ "github.com/mattn/go-sqlite3"

	"github.com/orbforge/go-orb-commitment/commitment"
)

var (
	ErrNotFound      = errors.New("archive: commitment not found")
	ErrDuplicateRoot = errors.New("archive: root already archived")
)

const schema = `
CREATE TABLE IF NOT EXISTS commitments (
	id           TEXT PRIMARY KEY,
	root         TEXT NOT NULL UNIQUE,
	total_leaves INTEGER NOT NULL,
	generated_at TEXT NOT NULL,
	export_json  BLOB NOT NULL
);
`

// Entry is the listing row for one archived commitment.
type Entry struct {
	ID          string
	Root        string
	TotalLeaves int
	GeneratedAt string
}

type Archive struct {
	db  *sql.DB
	log logger.Logger
}

// Open opens (creating if needed) the archive database at path.
func Open(path string, log logger.Logger) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Archive{db: db, log: log}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Put archives a built, verified commitment. The full export JSON is
// stored verbatim so the archive can later serve exactly what was
// published.
func (a *Archive) Put(c *commitment.Commitment) error {
	e := c.Export()
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	var exists int
	err = a.db.QueryRow(
		`SELECT COUNT(*) FROM commitments WHERE root = ?`, e.Root).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRoot, e.Root)
	}

	_, err = a.db.Exec(
		`INSERT INTO commitments (id, root, total_leaves, generated_at, export_json) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Root, e.TotalLeaves, e.GeneratedAt, payload,
	)
	if err != nil {
		return err
	}
	a.log.Infof("archived commitment %s root=%s leaves=%d", e.ID, e.Root, e.TotalLeaves)
	return nil
}

// Get returns the archived export for root (0x-prefixed hex).
func (a *Archive) Get(root string) (commitment.Export, error) {
	var payload []byte
	err := a.db.QueryRow(
		`SELECT export_json FROM commitments WHERE root = ?`, root).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return commitment.Export{}, fmt.Errorf("%w: %s", ErrNotFound, root)
	}
	if err != nil {
		return commitment.Export{}, err
	}

	var e commitment.Export
	if err := json.Unmarshal(payload, &e); err != nil {
		return commitment.Export{}, err
	}
	return e, nil
}

// List returns all archived commitments, most recent first.
func (a *Archive) List() ([]Entry, error) {
	rows, err := a.db.Query(
		`SELECT id, root, total_leaves, generated_at FROM commitments ORDER BY generated_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Root, &e.TotalLeaves, &e.GeneratedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
