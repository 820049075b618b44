package universe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinotradez/backend/internal/contracts"
)

// SymbolSet is one stored symbol list
type SymbolSet struct {
	Name      contracts.SymbolSetName
	Symbols   []string
	UpdatedAt time.Time
}

// Repository persists named symbol sets in PostgreSQL
// ⭐ SSOT: symbol_sets table access lives here only
type Repository struct {
	db *pgxpool.Pool
}

var _ contracts.SymbolSetStore = (*Repository)(nil)

// NewRepository creates a new Repository instance
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the symbol_sets table when missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS symbol_sets (
			name       TEXT PRIMARY KEY,
			symbols    TEXT[] NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create symbol_sets: %w", err)
	}
	return nil
}

// Symbols returns the stored list for name; an unknown name yields an empty list
func (r *Repository) Symbols(ctx context.Context, name contracts.SymbolSetName) ([]string, error) {
	query := `SELECT symbols FROM symbol_sets WHERE name = $1`

	var symbols []string
	err := r.db.QueryRow(ctx, query, string(name)).Scan(&symbols)
	if errors.Is(err, pgx.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query symbol set %s: %w", name, err)
	}

	return symbols, nil
}

// SetSymbols validates and replaces the list stored under name
func (r *Repository) SetSymbols(ctx context.Context, name contracts.SymbolSetName, symbols []string) error {
	normalized, err := ValidateSet(name, symbols)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO symbol_sets (name, symbols, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET
			symbols = EXCLUDED.symbols,
			updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, string(name), normalized); err != nil {
		return fmt.Errorf("upsert symbol set %s: %w", name, err)
	}

	return nil
}

// List returns every stored set ordered by name
func (r *Repository) List(ctx context.Context) ([]SymbolSet, error) {
	query := `SELECT name, symbols, updated_at FROM symbol_sets ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query symbol sets: %w", err)
	}
	defer rows.Close()

	sets := make([]SymbolSet, 0)
	for rows.Next() {
		var set SymbolSet
		var name string
		if err := rows.Scan(&name, &set.Symbols, &set.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan symbol set: %w", err)
		}
		set.Name = contracts.SymbolSetName(name)
		sets = append(sets, set)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate symbol sets: %w", err)
	}

	return sets, nil
}
