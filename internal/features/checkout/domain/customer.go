package domain

import (
	"reflect"
	"regexp"
	"strings"

	orders "elite-store/internal/features/orders/domain"

	"github.com/go-playground/validator/v10"
)

// FormInput is the raw checkout form as submitted.
type FormInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// CustomerInfo is the validated contact and shipping snapshot of a checkout.
type CustomerInfo struct {
	Name    string         `json:"name" validate:"required"`
	Email   string         `json:"email" validate:"required,emailshape"`
	Phone   string         `json:"phone"`
	Address orders.Address `json:"address"`
}

// Customer returns the contact part stored on the order.
func (c CustomerInfo) Customer() orders.Customer {
	return orders.Customer{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

// Collect trims every field and joins first and last name.
func Collect(in FormInput) CustomerInfo {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)

	return CustomerInfo{
		Name:  strings.TrimSpace(first + " " + last),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
		Address: orders.Address{
			Line1:      strings.TrimSpace(in.AddressLine1),
			Line2:      strings.TrimSpace(in.AddressLine2),
			City:       strings.TrimSpace(in.City),
			State:      strings.TrimSpace(in.State),
			PostalCode: strings.TrimSpace(in.PostalCode),
			Country:    strings.TrimSpace(in.Country),
		},
	}
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var requiredMessages = map[string]string{
	"name":        "Please enter your full name.",
	"email":       "Please enter your email address.",
	"line1":       "Please enter your address.",
	"city":        "Please enter your city.",
	"postal_code": "Please enter your ZIP code.",
	"country":     "Please select your country.",
}

const invalidEmailMessage = "Please enter a valid email address."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks required fields in form order, then the email shape.
// It returns the first failure as a *ValidationError.
func Validate(c CustomerInfo) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return &ValidationError{Field: "form", Reason: err.Error()}
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return &ValidationError{Field: fe.Field(), Reason: requiredMessages[fe.Field()]}
		}
	}

	return &ValidationError{Field: fieldErrs[0].Field(), Reason: invalidEmailMessage}
}
