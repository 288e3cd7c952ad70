package database

import (
	"database/sql"
	"fmt"
)

// InitSchema создает таблицы базы данных, если их еще нет
func InitSchema(conn *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS catalog_products (
			product_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			specifications TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS pipeline_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_uuid TEXT NOT NULL UNIQUE,
			stage TEXT NOT NULL,
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			completed_at TIMESTAMP,
			status TEXT NOT NULL DEFAULT 'in_progress',
			total_products INTEGER NOT NULL DEFAULT 0,
			total_failures INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS evaluation_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_uuid TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			true_positives INTEGER NOT NULL,
			false_positives INTEGER NOT NULL,
			false_negatives INTEGER NOT NULL,
			precision REAL NOT NULL,
			recall REAL NOT NULL,
			f1 REAL NOT NULL,
			perfect_products INTEGER NOT NULL,
			total_products INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pipeline_runs_uuid ON pipeline_runs(run_uuid)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluation_runs_uuid ON evaluation_runs(run_uuid)`,
	}

	for _, statement := range statements {
		if _, err := conn.Exec(statement); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
