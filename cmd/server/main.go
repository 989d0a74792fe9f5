package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/barrovivo/backend/internal/application/assistant"
	appcart "github.com/barrovivo/backend/internal/application/cart"
	appcatalog "github.com/barrovivo/backend/internal/application/catalog"
	appcheckout "github.com/barrovivo/backend/internal/application/checkout"
	appidentity "github.com/barrovivo/backend/internal/application/identity"
	apporders "github.com/barrovivo/backend/internal/application/orders"
	appreport "github.com/barrovivo/backend/internal/application/report"
	"github.com/barrovivo/backend/internal/infrastructure/auth"
	"github.com/barrovivo/backend/internal/infrastructure/config"
	"github.com/barrovivo/backend/internal/infrastructure/llm"
	"github.com/barrovivo/backend/internal/infrastructure/logger"
	"github.com/barrovivo/backend/internal/infrastructure/persistence"
	"github.com/barrovivo/backend/internal/infrastructure/report"
	"github.com/barrovivo/backend/internal/infrastructure/session"
	"github.com/barrovivo/backend/internal/interfaces/http/handler"
	"github.com/barrovivo/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Barrovivo backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	favoriteRepo := persistence.NewGormFavoriteRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Pending orders live in Redis when available so the thank-you page
	// survives a process restart; a single-node deploy can run without it.
	var pendingStore appcheckout.PendingOrderStore
	if cfg.Redis.Enabled {
		redisStore, err := session.NewRedisPendingOrderStore(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisStore.Close() }()
		pendingStore = redisStore
		log.Info("Using Redis pending-order store")
	} else {
		pendingStore = session.NewInMemoryPendingOrderStore()
		log.Info("Using in-memory pending-order store")
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	hasher := auth.NewBcryptHasher()

	// Application services
	productSvc := appcatalog.NewProductService(productRepo, categoryRepo, log)
	favoriteSvc := appcatalog.NewFavoriteService(favoriteRepo, productRepo, log)
	cartSvc := appcart.NewService(cartRepo, productRepo, log)
	checkoutSvc := appcheckout.NewService(
		persistence.NewGormTransactionScope(db.DB),
		cartRepo,
		pendingStore,
		log,
	)
	orderSvc := apporders.NewService(orderRepo, log)
	identitySvc := appidentity.NewService(userRepo, hasher, jwtService, log)

	searchSvc := assistant.NewSearchService(productRepo, categoryRepo, cfg.Assistant.ResultLimit, log)
	var model assistant.LanguageModel
	if groq := llm.NewGroqClient(cfg.Assistant, log); groq != nil {
		model = groq
		log.Info("Assistant language model enabled", zap.String("model", cfg.Assistant.Model))
	} else {
		log.Warn("Assistant running without a language model, replies degrade to plain search")
	}
	chatSvc := assistant.NewChatService(searchSvc, model, log)

	reportSvc := appreport.NewService(orderRepo, []appreport.Renderer{
		report.NewPDFRenderer(cfg.Reports.CompanyName),
		report.NewXLSXRenderer(),
	}, log)

	// HTTP layer
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(identitySvc),
		Catalog:   handler.NewCatalogHandler(productSvc, favoriteSvc),
		Cart:      handler.NewCartHandler(cartSvc),
		Checkout:  handler.NewCheckoutHandler(checkoutSvc, cartSvc, orderSvc),
		Orders:    handler.NewOrderHandler(orderSvc, report.NewInvoicePDFRenderer(cfg.Reports.CompanyName)),
		Assistant: handler.NewAssistantHandler(chatSvc, log),
		Reports:   handler.NewReportHandler(reportSvc),
	}

	engine := router.New(cfg, jwtService, handlers, log)

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
