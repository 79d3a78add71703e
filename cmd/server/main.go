package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"gameforge/internal/config"
	"gameforge/internal/database"
	"gameforge/internal/database/migrations"
	"gameforge/internal/delivery/websocket"
	"gameforge/internal/handler"
	"gameforge/internal/interfaces"
	"gameforge/internal/lock"
	"gameforge/internal/messaging"
	"gameforge/internal/service"
	"gameforge/pkg/ai"
	"gameforge/pkg/authutils"
	pgdb "gameforge/pkg/database"
	sharedLogger "gameforge/pkg/logger"
	"gameforge/pkg/middleware"
	"gameforge/pkg/migration"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	redis "github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	logger, err := sharedLogger.New(sharedLogger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	zap.L().Info("Logger initialized", zap.String("logLevel", cfg.LogLevel), zap.String("env", cfg.Env))

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- PostgreSQL ---
	db, err := pgdb.Connect(rootCtx, pgdb.Config{
		DSN:         cfg.GetDSN(),
		MaxConns:    cfg.DBMaxConns,
		IdleTimeout: cfg.DBIdleTimeout,
		MaxRetries:  cfg.DBMaxRetries,
		RetryDelay:  cfg.DBRetryDelay,
	}, logger)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	migrator := migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, db.Pool, logger)
	if err := migrator.Up(); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	// --- Redis (lock + rate limit) ---
	var redisClient *redis.Client
	if cfg.LockBackend == config.LockBackendRedis {
		redisClient, err = setupRedis(rootCtx, cfg)
		if err != nil {
			zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	var locker interfaces.GameLocker
	if redisClient != nil {
		locker = lock.NewRedisLocker(redisClient, cfg.LockTTL, logger)
	} else {
		zap.L().Warn("Using in-memory game locks; run a single instance only")
		locker = lock.NewMemoryLocker()
	}

	// --- AI ---
	aiClient, err := ai.NewAIClient(rootCtx, ai.ClientConfig{
		Type:    cfg.AIClientType,
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
		Timeout: cfg.AITimeout,
	}, logger)
	if err != nil {
		zap.L().Fatal("Failed to create AI client", zap.Error(err))
	}
	prompts, err := loadPrompts(cfg.PromptsFile)
	if err != nil {
		zap.L().Fatal("Failed to load prompts", zap.Error(err))
	}
	params := ai.GenerationParams{Temperature: &cfg.AITemperature, MaxTokens: &cfg.AIMaxTokens}
	narrativeGen := ai.NewNarrativeGenerator(aiClient, prompts, params, logger)
	conceptWriter := ai.NewConceptWriter(aiClient, prompts, params, logger)

	// --- Repositories ---
	gameRepo := database.NewPgGameRepository(logger)
	characterRepo := database.NewPgCharacterRepository(logger)
	locationRepo := database.NewPgLocationRepository(logger)
	historyRepo := database.NewPgNarrativeHistoryRepository(logger)
	choiceRepo := database.NewPgNarrativeChoiceRepository(logger)
	favoriteRepo := database.NewPgFavoriteRepository(db.Pool, logger)

	// --- Websocket ---
	verifier, err := authutils.NewJWTVerifier(cfg.JWTSecret, logger)
	if err != nil {
		zap.L().Fatal("Failed to create JWT verifier", zap.Error(err))
	}
	wsManager := websocket.NewManager(verifier.VerifyToken, cfg.GetAllowedOrigins(), logger)

	// --- Image pipeline ---
	var publisher interfaces.ImageTaskPublisher
	var consumer *messaging.ImageTaskConsumer
	var mqConn *amqp.Connection
	if cfg.ImagesEnabled {
		mqConn, err = messaging.Dial(rootCtx, cfg.RabbitMQURL, logger)
		if err != nil {
			zap.L().Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer mqConn.Close()

		taskPublisher, err := messaging.NewImageTaskPublisher(mqConn, cfg.ImageTaskQueue, logger)
		if err != nil {
			zap.L().Fatal("Failed to create image task publisher", zap.Error(err))
		}
		defer taskPublisher.Close()
		publisher = taskPublisher

		imageClient := ai.NewImageClient(cfg.AIAPIKey, cfg.ImageBaseURL, cfg.AITimeout, logger)
		mediaStore := service.NewMediaStore(cfg.MediaRoot, cfg.MediaDownloadTimeout, logger)
		imageService := service.NewImageService(db.Pool, imageClient, mediaStore, characterRepo, locationRepo, wsManager, logger)
		consumer = messaging.NewImageTaskConsumer(mqConn, cfg.ImageTaskQueue, cfg.ImageConsumer, cfg.ImagePrefetch, imageService, logger)
	} else {
		zap.L().Info("Image generation disabled")
	}

	// --- Services ---
	narrativeService := service.NewNarrativeService(db.Pool, db, gameRepo, historyRepo, choiceRepo, narrativeGen, locker, wsManager, logger)
	gameService := service.NewGameService(db.Pool, db, gameRepo, characterRepo, locationRepo, favoriteRepo, conceptWriter, publisher, logger)
	favoriteService := service.NewFavoriteService(db.Pool, gameRepo, favoriteRepo, logger)
	exportService := service.NewExportService(db.Pool, gameRepo, characterRepo, locationRepo, logger)

	apiHandler := handler.NewHandler(gameService, narrativeService, favoriteService, exportService, logger)

	// --- HTTP Server (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.GinZapLogger(logger))
	router.Use(gin.Recovery())

	p := ginprometheus.NewPrometheus("gin")

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.GetAllowedOrigins()
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/ws", gin.WrapF(wsManager.ServeWS))
	router.Static("/media", cfg.MediaRoot)
	router.GET("/api/v1/options", apiHandler.Options)

	authMiddleware := middleware.AuthMiddleware(verifier.VerifyToken, logger)
	apiHandler.RegisterRoutes(router, authMiddleware, newAIRateLimiter(cfg, redisClient))

	p.Use(router)

	// --- Background workers ---
	var workers sync.WaitGroup
	if consumer != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			zap.L().Info("Starting image task consumer")
			if err := consumer.Run(rootCtx); err != nil {
				zap.L().Error("Image task consumer stopped with error", zap.Error(err))
				return
			}
			zap.L().Info("Image task consumer stopped")
		}()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.L().Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-rootCtx.Done()
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP server forced to shutdown", zap.Error(err))
	}
	wsManager.CloseAll()
	workers.Wait()

	zap.L().Info("Server exiting")
}

// setupRedis connects to Redis, retrying with the database retry budget.
func setupRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	maxRetries := max(cfg.DBMaxRetries, 1)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err := client.Ping(pingCtx).Result()
		cancel()
		if err == nil {
			zap.L().Info("Connected to Redis", zap.String("address", opts.Addr), zap.Int("attempt", attempt))
			return client, nil
		}
		client.Close()
		lastErr = err
		zap.L().Warn("Redis ping failed, retrying...", zap.Int("attempt", attempt), zap.Int("max_retries", maxRetries), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBRetryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, lastErr)
}

// loadPrompts returns the embedded prompts unless path names an override file.
func loadPrompts(path string) (*ai.PromptSet, error) {
	if path == "" {
		return ai.DefaultPrompts()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file %s: %w", path, err)
	}
	return ai.ParsePrompts(data)
}

// newAIRateLimiter limits generator-backed routes per user. Without Redis the
// counters live in process memory.
func newAIRateLimiter(cfg *config.Config, redisClient *redis.Client) gin.HandlerFunc {
	var store ratelimit.Store
	if redisClient != nil {
		store = ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: redisClient,
			Rate:        time.Minute,
			Limit:       uint(cfg.RateLimitPerMinute),
		})
	} else {
		store = ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  time.Minute,
			Limit: uint(cfg.RateLimitPerMinute),
		})
	}

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			zap.L().Warn("Rate limit exceeded",
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, handler.APIError{
				Message: "Too many requests. Try again in " + strings.TrimSpace(time.Until(info.ResetTime).Round(time.Second).String()),
			})
		},
		KeyFunc: func(c *gin.Context) string {
			if userID, ok := middleware.GetUserID(c); ok {
				return "user:" + userID.String()
			}
			return "ip:" + c.ClientIP()
		},
	})
}
