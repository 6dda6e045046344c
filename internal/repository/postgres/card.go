package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"flashcards/internal/domain"

	"github.com/google/uuid"
)

const cardColumns = `id, deck_id, front, back, created_at, last_reviewed, ease_factor, interval_days`

// CardRepo implements repository.CardRepository
type CardRepo struct {
	db *sql.DB
}

// NewCardRepo creates a new card repository
func NewCardRepo(db *sql.DB) *CardRepo {
	return &CardRepo{db: db}
}

// Insert saves a new card together with its scheduling fields
func (r *CardRepo) Insert(ctx context.Context, card *domain.Card) error {
	query := `
		INSERT INTO cards (` + cardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		card.ID, card.DeckID, card.Front, card.Back, card.CreatedAt,
		nullTime(card), card.EaseFactor, card.Interval,
	)
	if err != nil {
		return fmt.Errorf("insert card %s: %w", card.ID, err)
	}
	return nil
}

// FindAll returns every card of every deck
func (r *CardRepo) FindAll(ctx context.Context) ([]domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// FindByDeck returns the cards of one deck in creation order
func (r *CardRepo) FindByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE deck_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("find cards of deck %s: %w", deckID, err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// UpdateSchedule writes the result of a review
func (r *CardRepo) UpdateSchedule(ctx context.Context, id uuid.UUID, s domain.Schedule) error {
	query := `
		UPDATE cards
		SET last_reviewed = $1, ease_factor = $2, interval_days = $3
		WHERE id = $4
	`
	if _, err := r.db.ExecContext(ctx, query, s.LastReviewed, s.EaseFactor, s.Interval, id); err != nil {
		return fmt.Errorf("update schedule of card %s: %w", id, err)
	}
	return nil
}

// Delete removes a single card
func (r *CardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cards WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	return nil
}

// DeleteByDeck removes all cards of a deck
func (r *CardRepo) DeleteByDeck(ctx context.Context, deckID uuid.UUID) error {
	query := `DELETE FROM cards WHERE deck_id = $1`
	if _, err := r.db.ExecContext(ctx, query, deckID); err != nil {
		return fmt.Errorf("delete cards of deck %s: %w", deckID, err)
	}
	return nil
}

func scanCards(rows *sql.Rows) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		var lastReviewed sql.NullTime
		if err := rows.Scan(
			&c.ID, &c.DeckID, &c.Front, &c.Back, &c.CreatedAt,
			&lastReviewed, &c.EaseFactor, &c.Interval,
		); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		if lastReviewed.Valid {
			c.LastReviewed = &lastReviewed.Time
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

func nullTime(card *domain.Card) sql.NullTime {
	if card.LastReviewed == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *card.LastReviewed, Valid: true}
}
