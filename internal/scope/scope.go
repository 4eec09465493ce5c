// Package scope shows scoped acquisition: setup on entry and a deferred
// teardown that runs on every exit path, whether the body returns normally,
// returns an error or panics.
package scope

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "modernc.org/sqlite"
)

// Manager prints its own entry and exit.
type Manager struct {
	w      io.Writer
	active bool
}

// NewManager returns a Manager that reports to w.
func NewManager(w io.Writer) *Manager {
	return &Manager{w: w}
}

// Enter marks the scope open.
func (m *Manager) Enter() *Manager {
	fmt.Fprintln(m.w, "Entering context")
	m.active = true
	return m
}

// Exit marks the scope closed. It is safe to call more than once.
func (m *Manager) Exit() {
	if !m.active {
		return
	}
	m.active = false
	fmt.Fprintln(m.w, "Exiting context")
}

// Active reports whether the scope is open.
func (m *Manager) Active() bool {
	return m.active
}

// With opens a Manager, runs body inside it and closes it on the way out.
// Errors from body are returned; panics propagate after Exit has run.
func With(w io.Writer, body func(m *Manager) error) error {
	m := NewManager(w).Enter()
	defer m.Exit()
	return body(m)
}

// MemoryDB uses a throwaway in-memory SQLite database to show the usual
// stack of deferred releases: the database, the transaction, the rows.
func MemoryDB(ctx context.Context, w io.Writer) ([]string, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// Each connection gets its own :memory: database
	db.SetMaxOpenConns(1)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() // no-op once committed

	if _, err := tx.ExecContext(ctx, `CREATE TABLE fruit (name TEXT NOT NULL)`); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	for _, name := range []string{"banana", "apple", "cherry"} {
		if _, err := tx.ExecContext(ctx, `INSERT INTO fruit (name) VALUES (?)`, name); err != nil {
			return nil, fmt.Errorf("insert %s: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT name FROM fruit ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	fmt.Fprintf(w, "rows read inside the scope: %v\n", names)
	return names, nil
}

// ContextManagers runs the scope walkthrough.
func ContextManagers(ctx context.Context, w io.Writer) error {
	if err := With(w, func(*Manager) error {
		fmt.Fprintln(w, "Inside context")
		return nil
	}); err != nil {
		return err
	}

	_, err := MemoryDB(ctx, w)
	return err
}
