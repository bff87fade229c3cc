package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the storefront service.
// Tags used:
// - mapstructure: env key used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Storage holds the persisted client-state configuration.
	Storage StorageConfig `mapstructure:",squash"`

	// Payment holds the payment backend and SDK configuration.
	Payment PaymentConfig `mapstructure:",squash"`

	// Checkout holds checkout flow tuning.
	Checkout CheckoutConfig `mapstructure:",squash"`

	// Display holds presentation settings.
	Display DisplayConfig `mapstructure:",squash"`

	// Events holds the order event broker configuration.
	Events EventsConfig `mapstructure:",squash"`
}

// StorageConfig holds the key/value store backing carts and order records.
type StorageConfig struct {
	// RedisURL is the connection URL, redis://[:password@]host[:port][/database].
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0" required:"true"`
	// TTL is the expiry applied to persisted keys. Zero keeps them forever.
	TTL time.Duration `mapstructure:"STORAGE_TTL" default:"0s"`
	// SessionIdle evicts in-memory cart and checkout state after inactivity.
	// Persisted carts are reloaded on the next request.
	SessionIdle time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT" default:"30m"`
}

// PaymentConfig holds the payment-intent endpoint and Stripe credentials.
type PaymentConfig struct {
	// APIBase is the base URL of the backend exposing /create-payment-intent.
	APIBase string `mapstructure:"PAYMENT_API_BASE" required:"true"`
	// StripeSecretKey is the Stripe API key used for tokenisation and confirmation.
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY" required:"true"`
	// StripeAPIURL overrides the Stripe API host (stripe-mock, tests).
	StripeAPIURL string `mapstructure:"STRIPE_API_URL"`
	// Currency is the ISO 4217 code prices are expressed in.
	Currency string `mapstructure:"STORE_CURRENCY" default:"EUR"`
	// Timeout bounds outbound payment calls. Zero means no timeout.
	Timeout time.Duration `mapstructure:"PAYMENT_TIMEOUT" default:"0s"`
}

// CheckoutConfig holds checkout flow tuning.
type CheckoutConfig struct {
	// ErrorDisplay is how long an inline checkout error stays visible.
	ErrorDisplay time.Duration `mapstructure:"CHECKOUT_ERROR_DISPLAY" default:"5s"`
	// DeliveryLeadTime is added to the order date to estimate delivery.
	DeliveryLeadTime time.Duration `mapstructure:"DELIVERY_LEAD_TIME" default:"168h"`
}

// DisplayConfig holds locales used when rendering dates.
type DisplayConfig struct {
	// Locale is used by the order confirmation view.
	Locale string `mapstructure:"DISPLAY_LOCALE" default:"pt-PT"`
	// TrackingLocale is used by the tracking view.
	TrackingLocale string `mapstructure:"TRACKING_LOCALE" default:"en-US"`
}

// EventsConfig holds the RabbitMQ settings. Publishing is disabled when URL is empty.
type EventsConfig struct {
	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`
	OrderQueue  string `mapstructure:"ORDER_EVENTS_QUEUE" default:"order.confirmed"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	bindTags(v, reflect.TypeOf(config))

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if missing := missingRequired(reflect.ValueOf(config)); len(missing) > 0 {
		errs := make([]error, 0, len(missing))
		for _, key := range missing {
			errs = append(errs, fmt.Errorf("missing required configuration: %s", key))
		}
		return nil, errors.Join(errs...)
	}

	return &config, nil
}

// bindTags walks the struct type, binding every env key and registering defaults.
func bindTags(v *viper.Viper, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			bindTags(v, field.Type)
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		_ = v.BindEnv(key)

		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
	}
}

// missingRequired returns the keys of required fields that are still zero.
func missingRequired(val reflect.Value) []string {
	var missing []string
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			missing = append(missing, missingRequired(val.Field(i))...)
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			missing = append(missing, field.Tag.Get("mapstructure"))
		}
	}
	return missing
}
