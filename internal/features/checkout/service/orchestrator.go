package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	cart "elite-store/internal/features/cart/domain"
	"elite-store/internal/features/checkout/domain"
	"elite-store/internal/features/checkout/ports"
	orders "elite-store/internal/features/orders/domain"

	"go.uber.org/zap"
)

// Options tunes order creation.
type Options struct {
	// Currency defaults to money.EUR.
	Currency money.Currency
	// LeadTime is added to the order date to estimate delivery.
	LeadTime time.Duration
	// Now and NewOrderNumber default to time.Now and orders.NewOrderNumber.
	Now            func() time.Time
	NewOrderNumber func() string
}

// Orchestrator drives one session's checkout attempts through the payment steps.
// At most one attempt runs at a time.
type Orchestrator struct {
	sessionID string
	carts     CartLookup
	gateway   ports.PaymentGateway
	intents   ports.IntentCreator
	orders    ports.OrderRecorder
	opts      Options
	log       *zap.Logger

	inFlight sync.Mutex

	mu          sync.Mutex
	state       domain.State
	subscribers []func(domain.Transition)
}

// NewOrchestrator creates an idle orchestrator for the session. The cart is
// resolved through carts on every attempt, so a replaced cart store is never stale.
func NewOrchestrator(
	sessionID string,
	carts CartLookup,
	gateway ports.PaymentGateway,
	intents ports.IntentCreator,
	recorder ports.OrderRecorder,
	opts Options,
) *Orchestrator {
	if opts.Currency.IsZero() {
		opts.Currency = money.EUR
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewOrderNumber == nil {
		opts.NewOrderNumber = orders.NewOrderNumber
	}

	return &Orchestrator{
		sessionID: sessionID,
		carts:     carts,
		gateway:   gateway,
		intents:   intents,
		orders:    recorder,
		opts:      opts,
		log:       logger.Session(sessionID),
		state:     domain.StateIdle,
	}
}

// State returns the current state.
func (o *Orchestrator) State() domain.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Subscribe registers fn to receive every transition, in order.
// fn runs on the submitting goroutine and must not call Submit.
func (o *Orchestrator) Subscribe(fn func(domain.Transition)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.subscribers = append(o.subscribers, fn)
}

// Submit runs one checkout attempt: validate the form, tokenise the card, create and
// confirm the payment intent, then record the order and empty the cart.
// The cart is only cleared after a confirmed payment.
func (o *Orchestrator) Submit(ctx context.Context, form domain.FormInput, card domain.CardInput) (*orders.Order, error) {
	if !o.inFlight.TryLock() {
		return nil, domain.ErrCheckoutInProgress
	}
	defer o.inFlight.Unlock()

	if o.State() == domain.StateSucceeded {
		o.move(domain.StateIdle, nil)
	}

	cartSource := o.carts(ctx, o.sessionID)
	lines, totals := cartSource.Snapshot()
	if len(lines) == 0 {
		o.reject(domain.ErrEmptyCart)
		return nil, domain.ErrEmptyCart
	}

	customer := domain.Collect(form)
	o.move(domain.StateFormCollected, nil)

	if err := domain.Validate(customer); err != nil {
		o.reject(err)
		return nil, err
	}
	o.move(domain.StateValidated, nil)

	paymentMethodID, err := o.gateway.CreatePaymentMethod(ctx, card, customer)
	if err != nil {
		return nil, o.fail(err)
	}
	o.move(domain.StatePaymentMethodCreated, nil)

	intent, err := o.intents.CreateIntent(ctx, lines, customer)
	if err != nil {
		return nil, o.fail(err)
	}

	confirmed, err := o.gateway.ConfirmPayment(ctx, intent.ClientSecret, paymentMethodID)
	if err != nil {
		return nil, o.fail(err)
	}
	o.move(domain.StateIntentConfirmed, nil)

	if confirmed.Status != domain.PaymentIntentSucceeded {
		return nil, o.fail(&domain.PaymentIncompleteError{Status: confirmed.Status})
	}

	amount := o.opts.Currency.FromMinor(confirmed.Amount)
	if amount.IsZero() {
		amount = totals.Subtotal
	}

	order, err := orders.NewOrder(orders.OrderParams{
		Number:    o.opts.NewOrderNumber(),
		Customer:  customer.Customer(),
		Address:   customer.Address,
		Items:     orderItems(lines),
		Amount:    amount,
		Payment:   orders.NewPaymentSummary(confirmed.CardLast4, confirmed.CardBrand),
		OrderedAt: o.opts.Now(),
		LeadTime:  o.opts.LeadTime,
	})
	if err != nil {
		return nil, o.fail(fmt.Errorf("service: failed to build order: %w", err))
	}

	// Payment is taken from here on; bookkeeping outlives the request.
	bookkeeping := context.WithoutCancel(ctx)
	log := o.log.With(zap.String("order_number", order.OrderNumber), zap.String("payment_intent", confirmed.ID))

	if err := o.orders.Save(bookkeeping, o.sessionID, order); err != nil {
		log.Error("Failed to record paid order", zap.Error(err))
	}
	if err := cartSource.Clear(bookkeeping); err != nil {
		log.Error("Failed to clear cart after payment", zap.Error(err))
	}

	o.move(domain.StateSucceeded, nil)
	log.Info("Checkout succeeded", zap.String("total", order.Totals.Total.String()))

	return order, nil
}

func orderItems(lines []cart.Line) []orders.Item {
	items := make([]orders.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, orders.Item{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
			Image:    l.Image,
		})
	}
	return items
}

func (o *Orchestrator) move(to domain.State, err error) {
	o.mu.Lock()
	from := o.state
	o.state = to
	subs := slices.Clone(o.subscribers)
	o.mu.Unlock()

	o.log.Debug("Checkout transition", zap.String("from", string(from)), zap.String("to", string(to)))
	o.publish(domain.Transition{From: from, To: to, Err: err}, subs)
}

// reject refuses a submission without leaving the current state.
func (o *Orchestrator) reject(err error) {
	o.mu.Lock()
	current := o.state
	subs := slices.Clone(o.subscribers)
	o.mu.Unlock()

	o.log.Info("Checkout rejected", zap.String("state", string(current)), zap.Error(err))
	o.publish(domain.Transition{From: current, To: current, Err: err}, subs)
}

func (o *Orchestrator) fail(err error) error {
	o.log.Warn("Checkout failed", zap.String("state", string(o.State())), zap.Error(err))
	o.move(domain.StateFailed, err)
	return err
}

func (o *Orchestrator) publish(t domain.Transition, subs []func(domain.Transition)) {
	for _, fn := range subs {
		fn(t)
	}
}
