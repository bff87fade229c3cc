package ports

import (
	"context"

	"elite-store/internal/features/cart/domain"
)

// CartRepository persists a session's cart lines.
type CartRepository interface {
	// Load returns the persisted lines; no persisted cart yields nil, nil.
	// Malformed data is reported as *storage.ParseError.
	Load(ctx context.Context, sessionID string) ([]domain.Line, error)
	// Save overwrites the persisted lines.
	Save(ctx context.Context, sessionID string, lines []domain.Line) error
}
