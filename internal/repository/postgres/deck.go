package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"flashcards/internal/domain"

	"github.com/google/uuid"
)

// DeckRepo implements repository.DeckRepository
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// Insert saves a new deck
func (r *DeckRepo) Insert(ctx context.Context, deck *domain.Deck) error {
	query := `
		INSERT INTO decks (id, name, created_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, deck.ID, deck.Name, deck.CreatedAt); err != nil {
		return fmt.Errorf("insert deck %s: %w", deck.ID, err)
	}
	return nil
}

// FindAll returns every deck, oldest first
func (r *DeckRepo) FindAll(ctx context.Context) ([]domain.Deck, error) {
	query := `
		SELECT id, name, created_at
		FROM decks
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find decks: %w", err)
	}
	defer rows.Close()

	var decks []domain.Deck
	for rows.Next() {
		var d domain.Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, d)
	}

	return decks, rows.Err()
}

// FindByID returns the deck with the given id, or nil if there is none
func (r *DeckRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	var d domain.Deck
	query := `SELECT id, name, created_at FROM decks WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find deck %s: %w", id, err)
	}

	return &d, nil
}

// Delete removes a single deck; its cards are removed by the caller
func (r *DeckRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM decks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete deck %s: %w", id, err)
	}
	return nil
}
