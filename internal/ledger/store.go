// Package ledger holds the in-memory transaction collection and the
// operations derived from it: dedup merging, filtering and aggregation.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/xpense/xpense/internal/common"
	"github.com/xpense/xpense/internal/model"
	"github.com/xpense/xpense/internal/service"
)

// Store owns the transaction collection. Every mutation persists the
// whole collection through the blob store before returning; if the write
// fails the in-memory change is rolled back, so memory never runs ahead
// of what was durably recorded.
type Store struct {
	blob   service.BlobStore
	logger *slog.Logger
	txns   []model.Transaction
}

// Open loads the ledger from the blob store. An empty or missing blob
// yields an empty ledger.
func Open(blob service.BlobStore, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := blob.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	s := &Store{blob: blob, logger: logger}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.txns); err != nil {
			return nil, fmt.Errorf("failed to decode ledger: %w", err)
		}
	}

	logger.Debug("ledger loaded", "transactions", len(s.txns))
	return s, nil
}

// All returns a snapshot of the collection in insertion order. The
// returned slice is a copy; callers may not mutate the store through it.
func (s *Store) All() []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Len returns the number of transactions in the store.
func (s *Store) Len() int {
	return len(s.txns)
}

// Find returns the transaction with the given ID.
func (s *Store) Find(id string) (model.Transaction, bool) {
	for _, tx := range s.txns {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// Add validates and appends a transaction, then persists.
func (s *Store) Add(tx model.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	s.txns = append(s.txns, tx)
	if err := s.persist(); err != nil {
		s.txns = s.txns[:len(s.txns)-1]
		return err
	}

	s.logger.Debug("transaction added", "id", tx.ID, "date", tx.Date, "amount", tx.Amount)
	return nil
}

// Update replaces the transaction with tx's ID in place, then persists.
// The ID itself is immutable; a missing ID is an error.
func (s *Store) Update(tx model.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	for i := range s.txns {
		if s.txns[i].ID == tx.ID {
			prev := s.txns[i]
			s.txns[i] = tx
			if err := s.persist(); err != nil {
				s.txns[i] = prev
				return err
			}
			s.logger.Debug("transaction updated", "id", tx.ID)
			return nil
		}
	}
	return common.ErrNotFound
}

// Remove deletes the transaction with the given ID, then persists.
func (s *Store) Remove(id string) error {
	for i := range s.txns {
		if s.txns[i].ID == id {
			removed := s.txns[i]
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			if err := s.persist(); err != nil {
				s.txns = append(s.txns[:i], append([]model.Transaction{removed}, s.txns[i:]...)...)
				return err
			}
			s.logger.Debug("transaction removed", "id", id)
			return nil
		}
	}
	return common.ErrNotFound
}

// Merge appends every candidate whose composite dedup key is not already
// present, among existing records and earlier candidates alike. First
// occurrence wins; exact duplicates are dropped silently, which makes
// re-importing an unchanged file a no-op. Returns the number of records
// actually added.
func (s *Store) Merge(batch []model.Transaction) (int, error) {
	seen := make(map[string]struct{}, len(s.txns)+len(batch))
	for _, tx := range s.txns {
		seen[tx.DedupKey()] = struct{}{}
	}

	prev := len(s.txns)
	for _, tx := range batch {
		key := tx.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		s.txns = append(s.txns, tx)
	}

	added := len(s.txns) - prev
	if added == 0 {
		return 0, nil
	}

	if err := s.persist(); err != nil {
		s.txns = s.txns[:prev]
		return 0, err
	}

	s.logger.Debug("batch merged", "candidates", len(batch), "added", added, "duplicates", len(batch)-added)
	return added, nil
}

// persist serializes the whole collection to the blob store. It is
// called synchronously by every mutating operation before that
// operation returns.
func (s *Store) persist() error {
	txns := s.txns
	if txns == nil {
		txns = []model.Transaction{}
	}
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := s.blob.Save(data); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}
