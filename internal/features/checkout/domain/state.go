package domain

// State is a step of the checkout state machine.
type State string

const (
	StateIdle                 State = "idle"
	StateFormCollected        State = "form_collected"
	StateValidated            State = "validated"
	StatePaymentMethodCreated State = "payment_method_created"
	StateIntentConfirmed      State = "intent_confirmed"
	StateSucceeded            State = "succeeded"
	StateFailed               State = "failed"
)

// InFlight reports whether a payment attempt is running in this state.
func (s State) InFlight() bool {
	switch s {
	case StateValidated, StatePaymentMethodCreated, StateIntentConfirmed:
		return true
	}
	return false
}

// Transition is published for every step of a checkout attempt.
// Rejected submissions (empty cart, invalid form) are published with From == To.
type Transition struct {
	From State
	To   State
	Err  error
}

// Rejected reports whether the transition refused a submission without changing state.
func (t Transition) Rejected() bool {
	return t.Err != nil && t.From == t.To
}
