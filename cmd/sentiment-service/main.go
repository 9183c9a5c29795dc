package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"findia-sentiment-engine/internal/analysis"
	"findia-sentiment-engine/internal/chat"
	"findia-sentiment-engine/internal/config"
	delivery "findia-sentiment-engine/internal/delivery/http"
	"findia-sentiment-engine/internal/digest"
	_ "findia-sentiment-engine/internal/docs"
	"findia-sentiment-engine/internal/news"
	"findia-sentiment-engine/internal/registry"
	"findia-sentiment-engine/internal/repository"
	"findia-sentiment-engine/internal/sentiment"
	"findia-sentiment-engine/internal/stockdata"
	"findia-sentiment-engine/internal/trend"
	"findia-sentiment-engine/internal/watchlist"
	"findia-sentiment-engine/pkg/logger"
	"findia-sentiment-engine/pkg/postgres"
	"findia-sentiment-engine/pkg/redis"
	"findia-sentiment-engine/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the sentiment analysis service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Sentiment Service", logger.StringField("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize chat session store, Redis-backed when configured
	sessionStore := chat.NewMemorySessionStore()
	if cfg.Redis.Host != "" {
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		sessionStore = chat.NewRedisSessionStore(redisClient, cfg.Chat.SessionTTL)
	}

	// Ticker registry
	stockRegistry := registry.New()
	appLogger.Info("Ticker registry loaded", logger.IntField("listings", stockRegistry.Count()))

	// News provider chain: keyed providers are unioned, free providers are
	// ordered fallbacks, samples guarantee a non-empty result.
	var keyed []news.Provider
	if cfg.News.NewsAPIKey != "" {
		keyed = append(keyed, news.NewNewsAPIProvider(&cfg.News, appLogger))
	}
	if cfg.News.GNewsAPIKey != "" {
		keyed = append(keyed, news.NewGNewsProvider(&cfg.News, appLogger))
	}
	free := []news.Provider{news.NewGoogleRSSProvider(&cfg.News, appLogger)}
	fallback := news.NewSampleProvider(time.Now)
	aggregator := news.NewAggregator(appLogger, keyed, free, fallback)

	// Sentiment classifier
	var genAIClient *genai.Client
	if cfg.Classifier.Provider == "gemini" {
		genAIClient, err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Classifier.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini client", logger.ErrorField(err))
		}
	}
	classifier, err := sentiment.NewClassifier(&cfg.Classifier, appLogger, genAIClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize classifier", logger.ErrorField(err))
	}
	scorer := sentiment.NewScorer(classifier, appLogger)

	// Stock data and trend correlation
	stockRepo := stockdata.NewRepository(&cfg.StockData, appLogger, nil)
	correlator := trend.NewCorrelator(nil)

	// Pipeline orchestrator
	analysisSvc := analysis.NewService(stockRegistry, aggregator, scorer, stockRepo, correlator, appLogger)

	// Chat and watchlist services
	chatSvc := chat.NewService(stockRegistry, analysisSvc, sessionStore, appLogger, cfg.Chat.DefaultDays)
	watchlistRepo := repository.NewWatchlistRepository(db.DB)
	snapshotRepo := repository.NewSentimentSnapshotRepository(db.DB)
	watchlistSvc := watchlist.NewService(stockRegistry, watchlistRepo, appLogger)

	// Watchlist digest
	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(telegram.Config{
			BotToken: cfg.Telegram.BotToken,
			ChatID:   cfg.Telegram.ChatID,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}
	digestSvc := digest.NewService(&cfg.Digest, watchlistRepo, snapshotRepo, analysisSvc, notifier, appLogger)
	if err := digestSvc.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start digest scheduler", logger.ErrorField(err))
	}
	defer digestSvc.Stop()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")
	delivery.NewSentimentHandler(analysisSvc, appLogger).RegisterRoutes(apiV1)
	delivery.NewSearchHandler(stockRegistry, appLogger).RegisterRoutes(apiV1)
	delivery.NewWatchlistHandler(watchlistSvc, appLogger).RegisterRoutes(apiV1)
	delivery.NewChatHandler(chatSvc, appLogger).RegisterRoutes(apiV1)
	delivery.NewHealthHandler(cfg.App.Name, cfg.App.Version).RegisterRoutes(e)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.StringField("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title fIndia Sentiment Engine API
// @version 1.0
// @description News sentiment aggregation and analysis for Indian equities.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "sentiment-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing sentiment-service CLI: %s\n", err)
		os.Exit(1)
	}
}
