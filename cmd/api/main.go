package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elite-store/internal/core/config"
	"elite-store/internal/core/locale"
	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	"elite-store/internal/core/server"
	"elite-store/internal/core/storage"
	cartadapter "elite-store/internal/features/cart/adapters"
	carthandler "elite-store/internal/features/cart/handler"
	cartservice "elite-store/internal/features/cart/service"
	catalogadapter "elite-store/internal/features/catalog/adapters"
	cataloghandler "elite-store/internal/features/catalog/handler"
	catalogservice "elite-store/internal/features/catalog/service"
	checkoutadapter "elite-store/internal/features/checkout/adapters"
	checkouthandler "elite-store/internal/features/checkout/handler"
	checkoutports "elite-store/internal/features/checkout/ports"
	checkoutservice "elite-store/internal/features/checkout/service"
	orderadapter "elite-store/internal/features/orders/adapters"
	orderhandler "elite-store/internal/features/orders/handler"
	orderports "elite-store/internal/features/orders/ports"
	orderservice "elite-store/internal/features/orders/service"
	trackingadapter "elite-store/internal/features/tracking/adapters"
	trackinghandler "elite-store/internal/features/tracking/handler"
	"elite-store/internal/features/tracking/ports"
	trackingservice "elite-store/internal/features/tracking/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Elite Store API
// @version 1.0
// @description Storefront API: catalog, session cart, checkout, order confirmation and tracking.
// @contact.name API Support
// @contact.email support@elitestore.example
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	currency, err := money.Parse(cfg.Payment.Currency)
	if err != nil {
		l.Fatal("Invalid store currency", zap.String("currency", cfg.Payment.Currency), zap.Error(err))
	}

	store, err := storage.NewRedisAdapter(cfg.Storage.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect to storage", zap.Error(err))
	}
	defer store.Close()

	confirmationDates := locale.NewDateFormatter(cfg.Display.Locale)
	trackingDates := locale.NewDateFormatter(cfg.Display.TrackingLocale)

	// Catalog
	catalog, err := catalogadapter.NewDefaultCatalog()
	if err != nil {
		l.Fatal("Failed to load product catalog", zap.Error(err))
	}
	catalogSvc := catalogservice.NewCatalogService(catalog)

	// Cart
	carts := cartservice.NewRegistry(cartadapter.NewStorageRepository(store, cfg.Storage.TTL), cfg.Storage.SessionIdle)
	defer carts.Close()
	cartLookup := func(ctx context.Context, sessionID string) checkoutports.CartSource {
		return carts.Store(ctx, sessionID)
	}

	// Orders
	publisher := newPublisher(cfg, currency, l)
	defer publisher.Close()
	orderSvc := orderservice.NewOrderService(orderadapter.NewStorageRepository(store, cfg.Storage.TTL), publisher)

	// Tracking
	trackingSvc := trackingservice.NewTrackingService([]ports.TrackingProvider{
		trackingadapter.NewDemoProvider(),
	})

	// Checkout
	gateway := checkoutadapter.NewStripeGateway(
		cfg.Payment.StripeSecretKey,
		checkoutadapter.NewStripeBackend(cfg.Payment.StripeAPIURL, cfg.Payment.Timeout),
	)
	sessions := checkoutservice.NewSessions(checkoutservice.Dependencies{
		Carts:   cartLookup,
		Gateway: gateway,
		Intents: checkoutadapter.NewIntentClient(cfg.Payment.APIBase, cfg.Payment.Timeout),
		Orders:  orderSvc,
		Options: checkoutservice.Options{
			Currency: currency,
			LeadTime: cfg.Checkout.DeliveryLeadTime,
		},
		ErrorDisplay: cfg.Checkout.ErrorDisplay,
		IdleTimeout:  cfg.Storage.SessionIdle,
	})
	defer sessions.Close()

	srv := server.New(cfg, store)

	// Register Routes
	cataloghandler.NewCatalogHandler(catalogSvc, currency).Register(srv.App)
	carthandler.NewCartHandler(carts, catalogSvc, currency).Register(srv.App)
	checkouthandler.NewCheckoutHandler(sessions, cartLookup, currency).Register(srv.App)
	orderhandler.NewOrderHandler(orderSvc, currency, confirmationDates).Register(srv.App)
	trackinghandler.NewTrackingHandler(trackingSvc, currency, trackingDates).Register(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	l.Info("Shutting down", zap.String("signal", sig.String()))
	if err := srv.Shutdown(shutdownTimeout); err != nil {
		l.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// newPublisher connects to RabbitMQ when configured. Without a broker, events are dropped.
func newPublisher(cfg *config.AppConfig, currency money.Currency, l *zap.Logger) orderports.EventPublisher {
	if cfg.Events.RabbitMQURL == "" {
		l.Info("Order events disabled")
		return orderadapter.NopPublisher{}
	}

	publisher, err := orderadapter.NewRabbitPublisher(cfg.Events.RabbitMQURL, cfg.Events.OrderQueue, currency)
	if err != nil {
		l.Warn("RabbitMQ unavailable, order events disabled", zap.Error(err))
		return orderadapter.NopPublisher{}
	}
	return publisher
}
