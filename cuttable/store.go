package cuttable

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	label      TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cut_rows (
	run_id     TEXT NOT NULL,
	position   INTEGER NOT NULL,
	stage      TEXT NOT NULL,
	signal     REAL NOT NULL,
	qe         REAL NOT NULL,
	res        REAL NOT NULL,
	dis        REAL NOT NULL,
	mec        REAL NOT NULL,
	nc         REAL NOT NULL,
	other      REAL NOT NULL,
	total_bkgd REAL NOT NULL,
	total_mc   REAL NOT NULL,
	data       REAL NOT NULL,
	purity     REAL,
	data_mc    REAL,
	rel_eff    REAL,
	abs_eff    REAL,
	PRIMARY KEY (run_id, position),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Store persists cut tables in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and creates the schema.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes rows and their summaries under a new run id.
func (s *Store) Save(ctx context.Context, label string, rows []Row) (string, error) {
	sums, err := Summarize(rows)
	if err != nil {
		return "", err
	}
	runID := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, label, created_at) VALUES (?, ?, ?)`,
		runID, label, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	const insert = `INSERT INTO cut_rows (run_id, position, stage, signal, qe, res, dis, mec, nc,
		other, total_bkgd, total_mc, data, purity, data_mc, rel_eff, abs_eff)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, r := range rows {
		var purity, dataMC, rel, abs sql.NullFloat64
		if i > 0 {
			sum := sums[i-1]
			purity = sql.NullFloat64{Float64: sum.Purity, Valid: true}
			dataMC = sql.NullFloat64{Float64: sum.DataMC, Valid: true}
			rel = sql.NullFloat64{Float64: sum.RelEff, Valid: true}
			abs = sql.NullFloat64{Float64: sum.AbsEff, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, insert,
			runID, i, r.Stage, r.Signal, r.QE, r.RES, r.DIS, r.MEC, r.NC,
			r.Other(), r.TotalBkgd, r.TotalMC, r.Data, purity, dataMC, rel, abs,
		); err != nil {
			return "", fmt.Errorf("insert row %q: %w", r.Stage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// Rows loads the rows of a run in cascade order.
func (s *Store) Rows(ctx context.Context, runID string) ([]Row, error) {
	rs, err := s.db.QueryContext(ctx,
		`SELECT stage, signal, qe, res, dis, mec, nc, total_bkgd, total_mc, data
		 FROM cut_rows WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rs.Close()

	var out []Row
	for rs.Next() {
		var r Row
		if err := rs.Scan(&r.Stage, &r.Signal, &r.QE, &r.RES, &r.DIS, &r.MEC, &r.NC,
			&r.TotalBkgd, &r.TotalMC, &r.Data); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rs.Err()
}

// LatestRun returns the id of the most recently saved run with label.
func (s *Store) LatestRun(ctx context.Context, label string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id FROM runs WHERE label = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		label).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("latest run %q: %w", label, err)
	}
	return id, nil
}
