// Package store persists simulation runs to SQLite so that sweep and
// scenario archives survive the process. The pure-Go modernc driver keeps
// the module cgo-free.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bioproc/go-asm1/results"
)

// Store handles SQLite persistence of result documents.
type Store struct {
	db *sql.DB
}

// RunSummary is the list view of a stored run.
type RunSummary struct {
	RunID      string    `json:"runId"`
	Timestamp  time.Time `json:"timestamp"`
	Solver     string    `json:"solver"`
	Status     string    `json:"status"`
	FinalTime  float64   `json:"finalTime"`
	NH4Removal float64   `json:"nh4Removal"`
	CODRemoval float64   `json:"codRemoval"`
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		solver TEXT NOT NULL,
		status TEXT NOT NULL,
		final_time REAL NOT NULL,
		nh4_removal REAL NOT NULL,
		cod_removal REAL NOT NULL,
		document TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a result document. The full document is stored as JSON
// alongside the indexed summary columns.
func (s *Store) SaveRun(doc *results.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO runs
			(run_id, timestamp, solver, status, final_time, nh4_removal, cod_removal, document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.Metadata.RunID,
		doc.Metadata.Timestamp,
		string(doc.Metadata.Solver),
		doc.Metadata.Status,
		doc.Data.FinalTime,
		doc.Assessment.Performance.NH4Removal,
		doc.Assessment.Performance.CODRemoval,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// LoadRun retrieves a stored document by run ID.
func (s *Store) LoadRun(runID string) (*results.Document, error) {
	var payload string
	err := s.db.QueryRow(`SELECT document FROM runs WHERE run_id = ?`, runID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	var doc results.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return &doc, nil
}

// ListRuns returns summaries of the most recent runs, newest first.
// limit <= 0 returns all.
func (s *Store) ListRuns(limit int) ([]RunSummary, error) {
	query := `
		SELECT run_id, timestamp, solver, status, final_time, nh4_removal, cod_removal
		FROM runs ORDER BY timestamp DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Timestamp, &r.Solver, &r.Status,
			&r.FinalTime, &r.NH4Removal, &r.CODRemoval); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteRun removes a stored run.
func (s *Store) DeleteRun(runID string) error {
	res, err := s.db.Exec(`DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}
