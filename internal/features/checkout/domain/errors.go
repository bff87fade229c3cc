package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutInProgress is returned when a session submits while a previous attempt is running.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// ValidationError reports the first invalid checkout field.
type ValidationError struct {
	// Field is the json name of the offending field, e.g. "postal_code".
	Field string
	// Reason is the human-readable message shown next to the form.
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PaymentMethodError reports a card tokenisation failure.
type PaymentMethodError struct {
	Message string
	Err     error
}

func (e *PaymentMethodError) Error() string {
	return "payment method: " + e.Message
}

func (e *PaymentMethodError) Unwrap() error {
	return e.Err
}

// PaymentIntentError reports a failed payment-intent request.
// Status is 0 when the request never got a response.
type PaymentIntentError struct {
	Status int
	Body   string
	Err    error
}

func (e *PaymentIntentError) Error() string {
	if e.Status == 0 && e.Err != nil {
		return fmt.Sprintf("payment intent request failed: %v", e.Err)
	}
	return fmt.Sprintf("Server error: %d - %s", e.Status, e.Body)
}

func (e *PaymentIntentError) Unwrap() error {
	return e.Err
}

// PaymentConfirmationError reports an error returned by payment confirmation.
type PaymentConfirmationError struct {
	Message string
	Err     error
}

func (e *PaymentConfirmationError) Error() string {
	return "payment confirmation: " + e.Message
}

func (e *PaymentConfirmationError) Unwrap() error {
	return e.Err
}

// PaymentIncompleteError reports a confirmed intent whose status is not "succeeded".
type PaymentIncompleteError struct {
	Status string
}

func (e *PaymentIncompleteError) Error() string {
	return "payment incomplete: " + e.Status
}

const genericPaymentFailure = "Payment failed. Please try again."

// UserMessage turns a checkout error into the inline text shown to the shopper.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		validationErr   *ValidationError
		methodErr       *PaymentMethodError
		confirmationErr *PaymentConfirmationError
		incompleteErr   *PaymentIncompleteError
	)

	switch {
	case errors.Is(err, ErrEmptyCart):
		return "Your cart is empty. Please add items before checkout."
	case errors.Is(err, ErrCheckoutInProgress):
		return "Your payment is already being processed. Please wait."
	case errors.As(err, &validationErr):
		return validationErr.Reason
	case errors.As(err, &methodErr):
		if methodErr.Message == "" {
			return genericPaymentFailure
		}
		return methodErr.Message
	case errors.As(err, &confirmationErr):
		return "Payment failed: " + confirmationErr.Message
	case errors.As(err, &incompleteErr):
		return fmt.Sprintf("Payment status: %s. Please try again.", incompleteErr.Status)
	default:
		return genericPaymentFailure
	}
}
