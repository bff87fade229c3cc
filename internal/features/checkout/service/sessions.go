package service

import (
	"context"
	"time"

	"elite-store/internal/features/checkout/ports"

	"github.com/jellydator/ttlcache/v3"
)

// CartLookup returns the session's cart.
type CartLookup func(ctx context.Context, sessionID string) ports.CartSource

// Dependencies are shared by every session's checkout.
type Dependencies struct {
	Carts        CartLookup
	Gateway      ports.PaymentGateway
	Intents      ports.IntentCreator
	Orders       ports.OrderRecorder
	Options      Options
	ErrorDisplay time.Duration
	// IdleTimeout evicts a session's checkout after inactivity. Zero never evicts.
	IdleTimeout time.Duration
}

// Session pairs a session's orchestrator with the form it drives.
type Session struct {
	Orchestrator *Orchestrator
	View         *FormView
}

// Sessions hands out one checkout Session per storefront session.
// Sessions idle for longer than Dependencies.IdleTimeout are evicted.
type Sessions struct {
	deps     Dependencies
	sessions *ttlcache.Cache[string, *Session]
}

// NewSessions creates a new Sessions.
func NewSessions(deps Dependencies) *Sessions {
	sessions := ttlcache.New(ttlcache.WithTTL[string, *Session](deps.IdleTimeout))
	if deps.IdleTimeout > 0 {
		go sessions.Start()
	}

	return &Sessions{
		deps:     deps,
		sessions: sessions,
	}
}

// Get returns the session's checkout, creating it on first use.
func (s *Sessions) Get(ctx context.Context, sessionID string) *Session {
	item, _ := s.sessions.GetOrSetFunc(sessionID, func() *Session {
		return s.newSession(sessionID)
	})
	return item.Value()
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	return s.sessions.Len()
}

// Close stops the eviction loop.
func (s *Sessions) Close() {
	s.sessions.Stop()
}

func (s *Sessions) newSession(sessionID string) *Session {
	orchestrator := NewOrchestrator(
		sessionID,
		s.deps.Carts,
		s.deps.Gateway,
		s.deps.Intents,
		s.deps.Orders,
		s.deps.Options,
	)
	view := NewFormView(s.deps.ErrorDisplay)
	orchestrator.Subscribe(view.OnTransition)

	return &Session{Orchestrator: orchestrator, View: view}
}
