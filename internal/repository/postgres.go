package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/anusha761/shopassist/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// CatalogueRepository handles laptop catalogue database operations. The
// catalogue is read-only during a matching run; only the importer and the
// embedding endpoints write.
type CatalogueRepository struct {
	db *sqlx.DB
}

// NewCatalogueRepository creates a new PostgreSQL catalogue repository
func NewCatalogueRepository(dsn string, maxConn, maxIdleConn int) (*CatalogueRepository, error) {
	db, err := sqlx.Connect("postgres", normalizeDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &CatalogueRepository{db: db}, nil
}

// normalizeDSN disables prepared statement caching to avoid "unnamed prepared
// statement does not exist" errors behind connection poolers. Only URL-form
// DSNs take query parameters; the keyword/value form is left untouched.
func normalizeDSN(dsn string) string {
	if !strings.Contains(dsn, "://") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&prefer_simple_protocol=true"
	}
	return dsn + "?prefer_simple_protocol=true"
}

// Close closes the database connection
func (r *CatalogueRepository) Close() error {
	return r.db.Close()
}

// ListLaptops returns all catalogue rows in insertion order. Callers parse
// prices and derive features themselves; the table is never mutated per run.
func (r *CatalogueRepository) ListLaptops(ctx context.Context) ([]model.Laptop, error) {
	query := `
		SELECT id, brand, model_name, description, price, created_at, updated_at
		FROM laptops
		ORDER BY id
	`
	var laptops []model.Laptop
	if err := r.db.SelectContext(ctx, &laptops, query); err != nil {
		return nil, fmt.Errorf("failed to fetch laptops: %w", err)
	}
	return laptops, nil
}

// GetLaptopByID retrieves a single catalogue row
func (r *CatalogueRepository) GetLaptopByID(ctx context.Context, id int64) (*model.Laptop, error) {
	var laptop model.Laptop
	query := `
		SELECT id, brand, model_name, description, price, created_at, updated_at
		FROM laptops
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &laptop, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get laptop: %w", err)
	}
	return &laptop, nil
}

// InsertLaptop inserts one catalogue row (used by the importer)
func (r *CatalogueRepository) InsertLaptop(ctx context.Context, laptop *model.Laptop) (int64, error) {
	query := `
		INSERT INTO laptops (brand, model_name, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query, laptop.Brand, laptop.ModelName, laptop.Description, laptop.Price)
	if err != nil {
		return 0, fmt.Errorf("failed to insert laptop: %w", err)
	}
	return id, nil
}

// UpdateEmbedding stores the description embedding for one laptop
func (r *CatalogueRepository) UpdateEmbedding(ctx context.Context, laptopID int64, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	query := `UPDATE laptops SET embedding = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, vec, laptopID)
	if err != nil {
		return fmt.Errorf("failed to update embedding: %w", err)
	}
	return nil
}

// BatchUpdateEmbeddings stores embeddings for multiple laptops in one
// transaction. A failed row is reported and skipped, not fatal for the batch.
func (r *CatalogueRepository) BatchUpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	success := 0
	var errors []string

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to start transaction: %v", err))
		return success, errors
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `UPDATE laptops SET embedding = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to prepare statement: %v", err))
		return success, errors
	}
	defer stmt.Close()

	for _, item := range items {
		vec := pgvector.NewVector(item.Embedding)
		if _, err := stmt.ExecContext(ctx, vec, item.LaptopID); err != nil {
			errors = append(errors, fmt.Sprintf("laptop_id %d: %v", item.LaptopID, err))
			continue
		}
		success++
	}

	if err := tx.Commit(); err != nil {
		errors = append(errors, fmt.Sprintf("failed to commit transaction: %v", err))
		return 0, errors
	}

	return success, errors
}
