// Package storage persists harness game records in BadgerDB so match
// runs can be inspected and aggregated after the fact.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const gameKeyPrefix = "game/"

// GameRecord is one completed harness game.
type GameRecord struct {
	ID         uuid.UUID `json:"id"`
	White      string    `json:"white"`
	Black      string    `json:"black"`
	Opening    string    `json:"opening"`
	OpeningFEN string    `json:"opening_fen"`
	Result     string    `json:"result"`
	Plies      int       `json:"plies"`
	Moves      []string  `json:"moves"`
	PlayedAt   time.Time `json:"played_at"`
}

// Store wraps BadgerDB for game persistence.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordGame assigns the record an ID and timestamp and persists it.
func (s *Store) RecordGame(rec GameRecord) (uuid.UUID, error) {
	rec.ID = uuid.New()
	rec.PlayedAt = time.Now().UTC()

	data, err := json.Marshal(&rec)
	if err != nil {
		return uuid.Nil, err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+rec.ID.String()), data)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("record game: %w", err)
	}
	return rec.ID, nil
}

// Games returns every stored game record.
func (s *Store) Games() ([]GameRecord, error) {
	var records []GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec GameRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}
	return records, nil
}

// Summary aggregates stored games per white/black pairing.
type Summary struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Draws      int `json:"draws"`
	TotalPlies int `json:"total_plies"`
}

// MatchSummary aggregates all stored games keyed by "white vs black".
func (s *Store) MatchSummary() (map[string]Summary, error) {
	records, err := s.Games()
	if err != nil {
		return nil, err
	}
	summaries := make(map[string]Summary)
	for _, rec := range records {
		key := rec.White + " vs " + rec.Black
		sum := summaries[key]
		sum.Games++
		sum.TotalPlies += rec.Plies
		switch rec.Result {
		case "checkmate-white":
			sum.WhiteWins++
		case "checkmate-black":
			sum.BlackWins++
		default:
			sum.Draws++
		}
		summaries[key] = sum
	}
	return summaries, nil
}
