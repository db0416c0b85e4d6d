package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thangamsteels/storefront/internal/cart"
	"github.com/thangamsteels/storefront/internal/catalog"
	"github.com/thangamsteels/storefront/internal/checkout"
	"github.com/thangamsteels/storefront/internal/config"
	"github.com/thangamsteels/storefront/internal/events"
	"github.com/thangamsteels/storefront/internal/httpserver"
	"github.com/thangamsteels/storefront/internal/logging"
	"github.com/thangamsteels/storefront/internal/middleware/csrf"
	loggingmw "github.com/thangamsteels/storefront/internal/middleware/logging"
	"github.com/thangamsteels/storefront/internal/session"
	"github.com/thangamsteels/storefront/internal/storage"
)

const (
	orderProcessingDelay = 3 * time.Second
	contactSubmitDelay   = 1500 * time.Millisecond
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	cat := catalog.Builtin()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			logger.Warn("catalog file rejected, using built-in catalog", "file", cfg.CatalogFile, "error", err)
		} else {
			cat = loaded
			logger.Info("catalog loaded from file", "file", cfg.CatalogFile, "products", cat.Len())
		}
	}

	var kv storage.KV
	if cfg.RedisAddr != "" {
		kv, err = storage.NewRedis(cfg.RedisAddr)
	} else {
		kv, err = storage.NewSQLite(cfg.SQLitePath)
	}
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaAddress, logger)

	cartStore := cart.NewStore(kv, logger)
	flow := checkout.NewManager(cartStore, producer, logger, orderProcessingDelay)
	sessions := session.NewManager(cfg.SessionSecret)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(csrf.Middleware(csrf.Config{
		SkipPaths: []string{"/health/live", "/health/ready"},
	}))

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler:  &httpserver.ProductHandler{Catalog: cat},
		CartHandler:     &httpserver.CartHandler{Catalog: cat, Cart: cartStore, Producer: producer},
		CheckoutHandler: &httpserver.CheckoutHandler{Flow: flow},
		ContactHandler:  &httpserver.ContactHandler{Delay: contactSubmitDelay},
		Sessions:        sessions,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if err := kv.Close(); err != nil {
		log.Printf("storage close error: %v", err)
	}
	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
