package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vistro/backend/internal/config"
	"github.com/vistro/backend/internal/handlers"
	"github.com/vistro/backend/internal/middleware"
	"github.com/vistro/backend/internal/service"
	"github.com/vistro/backend/internal/store"
	"github.com/vistro/backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting vistro api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect to the document store. A missing or unreachable database does
	// not prevent startup; data endpoints report the store as unavailable.
	var st store.Store = store.Unavailable{}
	var mongoStore *store.Mongo
	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set, running without a database")
	} else {
		dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.DialTimeout)*time.Second)
		mongoStore, err = store.DialMongo(dialCtx, cfg.Database.URL, cfg.Database.Name)
		cancel()
		if err != nil {
			log.Error("database unavailable", "error", err)
			mongoStore = nil
		} else {
			st = mongoStore
			log.Info("connected to database", "name", cfg.Database.Name)
		}
	}

	// Initialize services
	productService := service.NewProductService(st)
	orderService := service.NewOrderService(st)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	metaHandler := handlers.NewMetaHandler(log)
	diagHandler := handlers.NewDiagHandler(st, cfg.Database.URL != "", log)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	seedHandler := handlers.NewSeedHandler(productService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Root and diagnostic endpoints
	r.Get("/", metaHandler.Root)
	r.Get("/test", diagHandler.Status)
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", metaHandler.Hello)

		// Product endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)
		r.Post("/products", productHandler.CreateProduct)

		// Order endpoints
		r.Post("/orders", orderHandler.CreateOrder)

		// Sample data
		r.Post("/seed", seedHandler.Seed)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if mongoStore != nil {
		if err := mongoStore.Close(ctx); err != nil {
			log.Error("failed to close database connection", "error", err)
		}
	}

	log.Info("server stopped gracefully")
}
