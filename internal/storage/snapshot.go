package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kyz7/gallery/internal/models"
)

// DefaultSlotKey is the fixed key the catalog snapshot lives under.
const DefaultSlotKey = "lotte_castle_images"

// ErrMalformedSnapshot wraps any decode failure of a stored snapshot.
var ErrMalformedSnapshot = errors.New("malformed catalog snapshot")

// SnapshotStore reads and writes the whole catalog as one JSON array.
type SnapshotStore struct {
	slot Slot
	key  string
}

func NewSnapshotStore(slot Slot, key string) *SnapshotStore {
	if key == "" {
		key = DefaultSlotKey
	}
	return &SnapshotStore{slot: slot, key: key}
}

func (s *SnapshotStore) Key() string {
	return s.key
}

// LoadCatalog fails with ErrSlotEmpty or ErrMalformedSnapshot when the caller
// should fall back to its default catalog. A JSON null counts as malformed.
func (s *SnapshotStore) LoadCatalog(ctx context.Context) ([]models.MediaEntry, error) {
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	entries, err := DecodeCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", s.key, err)
	}
	return entries, nil
}

func (s *SnapshotStore) SaveCatalog(ctx context.Context, entries []models.MediaEntry) error {
	raw, err := EncodeCatalog(entries)
	if err != nil {
		return err
	}
	if err := s.slot.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("write slot %q: %w", s.key, err)
	}
	return nil
}

func EncodeCatalog(entries []models.MediaEntry) ([]byte, error) {
	if entries == nil {
		entries = []models.MediaEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return raw, nil
}

func DecodeCatalog(raw []byte) ([]models.MediaEntry, error) {
	var entries []models.MediaEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: null snapshot", ErrMalformedSnapshot)
	}
	return entries, nil
}
