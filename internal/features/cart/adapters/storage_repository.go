package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"elite-store/internal/core/storage"
	"elite-store/internal/features/cart/domain"
)

// CartKey is the namespace cart lines are stored under.
const CartKey = "elitestore-cart"

// StorageRepository implements ports.CartRepository on the key/value store.
type StorageRepository struct {
	store storage.Store
	ttl   time.Duration
}

// NewStorageRepository creates a new StorageRepository.
func NewStorageRepository(store storage.Store, ttl time.Duration) *StorageRepository {
	return &StorageRepository{
		store: store,
		ttl:   ttl,
	}
}

// Save serialises the full line sequence.
func (r *StorageRepository) Save(ctx context.Context, sessionID string, lines []domain.Line) error {
	if lines == nil {
		lines = []domain.Line{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return r.store.Set(ctx, storage.Key(CartKey, sessionID), data, r.ttl)
}

// Load reads the persisted lines.
func (r *StorageRepository) Load(ctx context.Context, sessionID string) ([]domain.Line, error) {
	key := storage.Key(CartKey, sessionID)

	data, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []domain.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, &storage.ParseError{Key: key, Err: err}
	}

	return lines, nil
}
