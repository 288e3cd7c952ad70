package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"specfusion/catalog"
	"specfusion/evaluation"
)

// PipelineRun представляет один запуск этапа конвейера
type PipelineRun struct {
	ID            int        `json:"id"`
	RunUUID       string     `json:"run_uuid"`
	Stage         string     `json:"stage"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	Status        string     `json:"status"`
	TotalProducts int        `json:"total_products"`
	TotalFailures int        `json:"total_failures"`
}

// SaveCatalogProduct сохраняет продукт каталога; существующая запись
// с тем же идентификатором перезаписывается
func (db *DB) SaveCatalogProduct(product *catalog.CatalogProduct) error {
	specs, err := json.Marshal(product.Specifications)
	if err != nil {
		return fmt.Errorf("failed to marshal specifications: %w", err)
	}

	query := `
		INSERT INTO catalog_products (product_id, name, specifications, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(product_id) DO UPDATE SET
			name = excluded.name,
			specifications = excluded.specifications,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := db.conn.Exec(query, product.ID, product.Name, string(specs)); err != nil {
		return fmt.Errorf("failed to save catalog product: %w", err)
	}
	return nil
}

// GetCatalogProduct получает продукт каталога по идентификатору
func (db *DB) GetCatalogProduct(productID string) (*catalog.CatalogProduct, error) {
	query := `SELECT product_id, name, specifications FROM catalog_products WHERE product_id = ?`

	var specsJSON string
	product := &catalog.CatalogProduct{}
	err := db.conn.QueryRow(query, productID).Scan(&product.ID, &product.Name, &specsJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog product: %w", err)
	}

	if err := json.Unmarshal([]byte(specsJSON), &product.Specifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal specifications: %w", err)
	}
	return product, nil
}

// ListCatalogProductIDs получает идентификаторы всех продуктов каталога
func (db *DB) ListCatalogProductIDs() ([]string, error) {
	rows, err := db.conn.Query(`SELECT product_id FROM catalog_products ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog products: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog products: %w", err)
	}
	return ids, nil
}

// StartRun создает запись о запуске этапа конвейера
func (db *DB) StartRun(stage string) (*PipelineRun, error) {
	runUUID := uuid.New().String()

	query := `INSERT INTO pipeline_runs (run_uuid, stage, status) VALUES (?, ?, 'in_progress')`
	result, err := db.conn.Exec(query, runUUID, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get run ID: %w", err)
	}

	return &PipelineRun{
		ID:      int(id),
		RunUUID: runUUID,
		Stage:   stage,
		Status:  "in_progress",
	}, nil
}

// CompleteRun завершает запуск конвейера с итоговыми счетчиками
func (db *DB) CompleteRun(runUUID string, totalProducts, totalFailures int) error {
	query := `
		UPDATE pipeline_runs
		SET completed_at = CURRENT_TIMESTAMP, status = 'completed',
		    total_products = ?, total_failures = ?
		WHERE run_uuid = ?
	`
	if _, err := db.conn.Exec(query, totalProducts, totalFailures, runUUID); err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun помечает запуск конвейера как неудачный
func (db *DB) FailRun(runUUID string) error {
	query := `
		UPDATE pipeline_runs
		SET completed_at = CURRENT_TIMESTAMP, status = 'failed'
		WHERE run_uuid = ?
	`
	if _, err := db.conn.Exec(query, runUUID); err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetRunByUUID получает запуск конвейера по UUID
func (db *DB) GetRunByUUID(runUUID string) (*PipelineRun, error) {
	query := `
		SELECT id, run_uuid, stage, started_at, completed_at, status,
		       total_products, total_failures
		FROM pipeline_runs WHERE run_uuid = ?
	`

	run := &PipelineRun{}
	var completedAt sql.NullTime
	err := db.conn.QueryRow(query, runUUID).Scan(
		&run.ID, &run.RunUUID, &run.Stage, &run.StartedAt, &completedAt,
		&run.Status, &run.TotalProducts, &run.TotalFailures,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	return run, nil
}

// SaveEvaluation сохраняет итоги оценки корпуса, привязанные к запуску
func (db *DB) SaveEvaluation(runUUID string, report *evaluation.Report) error {
	scores := report.Total.EvalScore()
	query := `
		INSERT INTO evaluation_runs
		(run_uuid, true_positives, false_positives, false_negatives,
		 precision, recall, f1, perfect_products, total_products)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.conn.Exec(query, runUUID,
		report.Total.TruePositives, report.Total.FalsePositives, report.Total.FalseNegatives,
		scores.Precision, scores.Recall, scores.F1,
		len(report.PerfectProducts()), len(report.PerProduct),
	)
	if err != nil {
		return fmt.Errorf("failed to save evaluation: %w", err)
	}
	return nil
}
