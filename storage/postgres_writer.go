package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"restaurant-scout/models"
	"restaurant-scout/utils"

	_ "github.com/lib/pq"
)

// PostgresWriter handles storing ranked results in PostgreSQL
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTable creates the recommendations table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS recommendations (
		id           SERIAL PRIMARY KEY,
		request_id   VARCHAR(64)  NOT NULL,
		query        TEXT         NOT NULL,
		rank         INT          NOT NULL,
		name         TEXT         NOT NULL,
		cuisine      TEXT,
		price_tier   VARCHAR(8),
		address      TEXT,
		source       VARCHAR(50)  NOT NULL,
		total_score  NUMERIC(5,1) DEFAULT 0,
		dietary      NUMERIC(5,1) DEFAULT 0,
		cuisine_fit  NUMERIC(5,1) DEFAULT 0,
		budget       NUMERIC(5,1) DEFAULT 0,
		location     NUMERIC(5,1) DEFAULT 0,
		amenity      NUMERIC(5,1) DEFAULT 0,
		verdict      TEXT,
		generated_at TIMESTAMP    NOT NULL DEFAULT NOW(),
		UNIQUE (request_id, rank)
	);

	CREATE INDEX IF NOT EXISTS idx_recommendations_request ON recommendations (request_id);
	CREATE INDEX IF NOT EXISTS idx_recommendations_score   ON recommendations (total_score);
	CREATE INDEX IF NOT EXISTS idx_recommendations_source  ON recommendations (source);
	`
	_, err := w.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'recommendations' is ready")
	return nil
}

// SaveResult inserts all ranked entries of a result in a single transaction,
// skipping duplicates of the same request and rank
func (w *PostgresWriter) SaveResult(result *models.RankedResult) error {
	if result == nil || len(result.Entries) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO recommendations (
			request_id, query, rank, name, cuisine, price_tier, address, source,
			total_score, dietary, cuisine_fit, budget, location, amenity, verdict, generated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (request_id, rank) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i, e := range result.Entries {
		_, err = stmt.Exec(
			result.RequestID,
			result.Query,
			i+1,
			e.Candidate.Name,
			strings.Join(e.Candidate.CuisineTags, ", "),
			e.Candidate.PriceTier,
			e.Candidate.Address,
			e.Source,
			e.Score.Total,
			e.Score.Dietary,
			e.Score.Cuisine,
			e.Score.Budget,
			e.Score.Location,
			e.Score.Amenity,
			e.Score.Explanation,
			result.GeneratedAt,
		)
		if err != nil {
			w.logger.Warn("Skipping insert for '%s': %v", e.Candidate.Name, err)
			continue
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Inserted %d/%d recommendations into PostgreSQL", inserted, len(result.Entries))
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() error {
	if w.db != nil {
		return w.db.Close()
	}
	return nil
}
