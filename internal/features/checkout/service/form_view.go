package service

import (
	"sync"
	"time"

	"elite-store/internal/features/checkout/domain"
)

// ConfirmationPath is where the shopper is sent after a successful checkout.
const ConfirmationPath = "/orders/last"

// FormState is what the checkout form shows at a point in time.
type FormState struct {
	State         domain.State `json:"state"`
	SubmitEnabled bool         `json:"submitEnabled"`
	Busy          bool         `json:"busy"`
	ErrorMessage  string       `json:"errorMessage,omitempty"`
	RedirectTo    string       `json:"redirectTo,omitempty"`
}

// FormView turns checkout transitions into form state.
// Errors disappear after the display period or on the next submission, whichever comes first.
type FormView struct {
	mu           sync.Mutex
	current      FormState
	errorDisplay time.Duration
	seq          uint64
	timer        *time.Timer
}

// NewFormView creates an idle form. A non-positive errorDisplay keeps errors until the next submission.
func NewFormView(errorDisplay time.Duration) *FormView {
	return &FormView{
		current:      FormState{State: domain.StateIdle, SubmitEnabled: true},
		errorDisplay: errorDisplay,
	}
}

// Snapshot returns the current form state.
func (v *FormView) Snapshot() FormState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// OnTransition applies a checkout transition.
func (v *FormView) OnTransition(t domain.Transition) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current.State = t.To

	if t.Err != nil {
		v.current.Busy = false
		v.current.SubmitEnabled = true
		v.current.ErrorMessage = domain.UserMessage(t.Err)
		v.scheduleClear()
		return
	}

	switch t.To {
	case domain.StateIdle:
		v.current.RedirectTo = ""
	case domain.StateFormCollected:
		v.clearError()
		v.current.RedirectTo = ""
	case domain.StateValidated, domain.StatePaymentMethodCreated, domain.StateIntentConfirmed:
		v.current.Busy = true
		v.current.SubmitEnabled = false
	case domain.StateSucceeded:
		v.current.Busy = false
		v.current.SubmitEnabled = true
		v.current.RedirectTo = ConfirmationPath
	}
}

func (v *FormView) clearError() {
	v.seq++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.current.ErrorMessage = ""
}

func (v *FormView) scheduleClear() {
	v.seq++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	if v.errorDisplay <= 0 {
		return
	}

	seq := v.seq
	v.timer = time.AfterFunc(v.errorDisplay, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.seq == seq {
			v.current.ErrorMessage = ""
			v.timer = nil
		}
	})
}
