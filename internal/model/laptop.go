package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// Laptop represents a catalogue row. Price keeps the human formatting from the
// source sheet ("79,999") and is normalized to an integer at match time.
type Laptop struct {
	ID          int64           `json:"id" db:"id"`
	Brand       string          `json:"brand" db:"brand"`
	ModelName   string          `json:"model_name" db:"model_name"`
	Description string          `json:"description" db:"description"`
	Price       string          `json:"price" db:"price"`
	Embedding   pgvector.Vector `json:"-" db:"embedding"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// LaptopMatch is a catalogue row with the values derived during one matching
// run. Features and Score are recomputed per run and never written back.
type LaptopMatch struct {
	Laptop
	PriceValue int             `json:"price_value"`
	Features   *LaptopFeatures `json:"features,omitempty"`
	Score      int             `json:"score"`
}

// EmbeddingItem carries one precomputed description embedding for a laptop.
type EmbeddingItem struct {
	LaptopID  int64     `json:"laptop_id" binding:"required"`
	Embedding []float32 `json:"embedding" binding:"required"`
}
