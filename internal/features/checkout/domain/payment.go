package domain

// PaymentIntentSucceeded is the intent status of a completed payment.
const PaymentIntentSucceeded = "succeeded"

// CardInput references card details captured by the payment widget.
type CardInput struct {
	// Token is the single-use card token produced client side.
	Token string `json:"token"`
}

// IntentResponse is the payment backend's answer to an intent request.
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentIntent is the confirmed intent as reported by the payment processor.
type PaymentIntent struct {
	ID string
	// Amount is in minor units (cents).
	Amount    int64
	Status    string
	CardLast4 string
	CardBrand string
}
