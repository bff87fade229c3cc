package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"elite-store/internal/core/logger"
	"elite-store/internal/core/storage"
	"elite-store/internal/features/cart/domain"
	"elite-store/internal/features/cart/ports"
	catalog "elite-store/internal/features/catalog/domain"

	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

// Store is one session's cart. Every mutation is persisted through the repository.
// A failed write keeps the in-memory change and returns the error.
type Store struct {
	mu        sync.Mutex
	sessionID string
	cart      *domain.Cart
	repo      ports.CartRepository
	log       *zap.Logger
}

// NewStore rehydrates the session's cart. Missing or unreadable data yields an empty cart.
func NewStore(ctx context.Context, sessionID string, repo ports.CartRepository) *Store {
	log := logger.Session(sessionID)

	lines, err := repo.Load(ctx, sessionID)
	if err != nil {
		var parseErr *storage.ParseError
		if errors.As(err, &parseErr) {
			log.Warn("Discarding malformed persisted cart", zap.String("key", parseErr.Key), zap.Error(err))
		} else {
			log.Error("Failed to load persisted cart", zap.Error(err))
		}
		lines = nil
	}

	return &Store{
		sessionID: sessionID,
		cart:      domain.NewCart(lines),
		repo:      repo,
		log:       log,
	}
}

// SessionID returns the session this store belongs to.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Add appends the product or increments its quantity.
func (s *Store) Add(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(p)
	s.log.Debug("Cart line added", zap.Int("product_id", p.ID))
	return s.persist(ctx)
}

// Remove deletes the product's line. Removing an absent product is a no-op.
func (s *Store) Remove(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Remove(productID) {
		return nil
	}
	return s.persist(ctx)
}

// SetQuantity sets the line's quantity; qty <= 0 removes it.
func (s *Store) SetQuantity(ctx context.Context, productID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(productID, qty) {
		return nil
	}
	return s.persist(ctx)
}

// ChangeQuantity adjusts the line's quantity by delta.
func (s *Store) ChangeQuantity(ctx context.Context, productID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.ChangeQuantity(productID, delta) {
		return nil
	}
	return s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	return s.persist(ctx)
}

// Lines returns a snapshot of the cart lines.
func (s *Store) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Lines()
}

// Totals returns the derived item count and subtotal.
func (s *Store) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Totals()
}

// Snapshot returns lines and totals taken under one lock.
func (s *Store) Snapshot() ([]domain.Line, domain.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Lines(), s.cart.Totals()
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.sessionID, s.cart.Lines()); err != nil {
		s.log.Error("Failed to persist cart", zap.Error(err))
		return fmt.Errorf("service: failed to persist cart: %w", err)
	}
	return nil
}

// Registry hands out one Store per session, creating it on first use.
// Stores idle for longer than the configured timeout are evicted; state
// survives eviction because every mutation is written through to the repository.
type Registry struct {
	repo   ports.CartRepository
	stores *ttlcache.Cache[string, *Store]
}

// NewRegistry creates a new Registry. An idle timeout of 0 never evicts.
func NewRegistry(repo ports.CartRepository, idle time.Duration) *Registry {
	stores := ttlcache.New(ttlcache.WithTTL[string, *Store](idle))
	if idle > 0 {
		go stores.Start()
	}

	return &Registry{
		repo:   repo,
		stores: stores,
	}
}

// Store returns the session's cart store. The persisted cart is loaded outside
// the cache lock; when two requests race, the first insert wins.
func (r *Registry) Store(ctx context.Context, sessionID string) *Store {
	if item := r.stores.Get(sessionID); item != nil {
		return item.Value()
	}

	loaded := NewStore(ctx, sessionID, r.repo)
	item, _ := r.stores.GetOrSet(sessionID, loaded)
	return item.Value()
}

// Len returns the number of live stores.
func (r *Registry) Len() int {
	return r.stores.Len()
}

// Close stops the eviction loop.
func (r *Registry) Close() {
	r.stores.Stop()
}
