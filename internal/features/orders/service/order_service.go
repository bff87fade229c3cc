package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"elite-store/internal/core/logger"
	"elite-store/internal/features/orders/domain"
	"elite-store/internal/features/orders/ports"

	"go.uber.org/zap"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrEmailMismatch is returned when the provided email does not match the order's email.
var ErrEmailMismatch = errors.New("email does not match order record")

// OrderService keeps each session's most recent order.
type OrderService struct {
	repo      ports.OrderRepository
	publisher ports.EventPublisher
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(repo ports.OrderRepository, publisher ports.EventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
	}
}

// Save overwrites the session's order record and announces it.
// A publish failure is logged; the order stays saved.
func (s *OrderService) Save(ctx context.Context, sessionID string, order *domain.Order) error {
	if err := s.repo.Save(ctx, sessionID, order); err != nil {
		return fmt.Errorf("service: failed to save order %s: %w", order.OrderNumber, err)
	}

	log := logger.Session(sessionID).With(zap.String("order_number", order.OrderNumber))
	log.Info("Order recorded")

	if s.publisher != nil {
		if err := s.publisher.PublishOrderConfirmed(ctx, sessionID, order); err != nil {
			log.Warn("Failed to publish order event", zap.Error(err))
		}
	}

	return nil
}

// Load returns the session's most recent order.
// Malformed records are returned as *storage.ParseError for the caller to treat as absent.
func (s *OrderService) Load(ctx context.Context, sessionID string) (*domain.Order, error) {
	order, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load order: %w", err)
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

// GetOrder returns the session's order if its number matches and the email matches the customer.
func (s *OrderService) GetOrder(ctx context.Context, sessionID, orderNumber, email string) (*domain.Order, error) {
	order, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(order.OrderNumber, strings.TrimSpace(orderNumber)) {
		return nil, ErrOrderNotFound
	}

	if !strings.EqualFold(order.CustomerInfo.Email, strings.TrimSpace(email)) {
		return nil, ErrEmailMismatch
	}

	return order, nil
}
