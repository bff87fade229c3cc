package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"elite-store/internal/core/storage"
	"elite-store/internal/features/orders/domain"
)

// LastOrderKey is the namespace the most recent order is stored under.
const LastOrderKey = "lastOrder"

// StorageRepository implements ports.OrderRepository on the key/value store.
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

// Save overwrites the session's order record.
func (r *StorageRepository) Save(ctx context.Context, sessionID string, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	return r.store.Set(ctx, storage.Key(LastOrderKey, sessionID), data, r.ttl)
}

// Load reads the session's order record.
func (r *StorageRepository) Load(ctx context.Context, sessionID string) (*domain.Order, error) {
	key := storage.Key(LastOrderKey, sessionID)

	data, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, &storage.ParseError{Key: key, Err: err}
	}
	if err := order.Validate(); err != nil {
		return nil, &storage.ParseError{Key: key, Err: err}
	}

	return &order, nil
}
