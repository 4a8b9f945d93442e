package vocabulary

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/jin/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocabulary/mock_repository.go -package=mock_vocabulary

// CardRepository stores vocabulary sets in a database.
type CardRepository interface {
	FindBySetType(ctx context.Context, setType SetType) ([]CardRecord, error)
	ReplaceSet(ctx context.Context, setType SetType, cards []Card) error
}

// CardRecord is a card as stored in the vocabulary_cards table.
type CardRecord struct {
	ID            int64          `db:"id"`
	SetType       string         `db:"set_type"`
	Position      int            `db:"position"`
	Character     string         `db:"character"`
	Pronunciation string         `db:"pronunciation"`
	Translation   string         `db:"translation"`
	Example       sql.NullString `db:"example"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// Card converts the record back to its API form.
func (r CardRecord) Card() Card {
	card := Card{
		Character:     r.Character,
		Pronunciation: r.Pronunciation,
		Translation:   r.Translation,
	}
	if r.Example.Valid {
		example := r.Example.String
		card.Example = &example
	}
	return card
}

// DBCardRepository implements CardRepository using MySQL.
type DBCardRepository struct {
	db *sqlx.DB
}

// NewDBCardRepository creates a new DBCardRepository.
func NewDBCardRepository(db *sqlx.DB) *DBCardRepository {
	return &DBCardRepository{db: db}
}

// FindBySetType returns the cards of a set in source order.
func (r *DBCardRepository) FindBySetType(ctx context.Context, setType SetType) ([]CardRecord, error) {
	var records []CardRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM vocabulary_cards WHERE set_type = ? ORDER BY position", string(setType),
	); err != nil {
		return nil, fmt.Errorf("load cards of %s: %w", setType, err)
	}
	return records, nil
}

// insertBatchSize keeps each INSERT well below the MySQL placeholder limit.
const insertBatchSize = 100

// ReplaceSet deletes the stored cards of a set and inserts cards in a single transaction,
// in batches of insertBatchSize rows.
func (r *DBCardRepository) ReplaceSet(ctx context.Context, setType SetType, cards []Card) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM vocabulary_cards WHERE set_type = ?", string(setType)); err != nil {
			return fmt.Errorf("delete cards of %s: %w", setType, err)
		}
		if len(cards) == 0 {
			return nil
		}

		columns := []string{"set_type", "position", "`character`", "pronunciation", "translation", "example"}
		for start := 0; start < len(cards); start += insertBatchSize {
			end := min(start+insertBatchSize, len(cards))
			batch := cards[start:end]

			args := make([]interface{}, 0, len(batch)*len(columns))
			for i, card := range batch {
				var example sql.NullString
				if card.Example != nil {
					example = sql.NullString{String: *card.Example, Valid: true}
				}
				args = append(args, string(setType), start+i, card.Character, card.Pronunciation, card.Translation, example)
			}
			query := database.BuildMultiRowInsert("vocabulary_cards", columns, len(batch))
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert cards %d-%d of %s: %w", start, end-1, setType, err)
			}
		}
		return nil
	})
}
