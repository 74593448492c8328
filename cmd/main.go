package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/inklore/economy-service/internal/facades"
	"github.com/inklore/economy-service/internal/handlers"
	"github.com/inklore/economy-service/internal/jwt"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/middlewares"
	"github.com/inklore/economy-service/internal/repositories"
	"github.com/inklore/economy-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title economy-service API
// @version 1.0.0
// @description Virtual economy service: balances, inventory, store purchases and gift escrow
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, catalogCacheTTLSecond,
		kafkaBroker, kafkaTopic,
		catalogURL, socialGraphURL, logLevel,
		jwtSecret, jwtExp, giftExpiryHours,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, catalogCacheTTLSecond,
		kafkaBroker, kafkaTopic,
		catalogURL, socialGraphURL,
		logLevel,
		jwtSecret, jwtExp, giftExpiryHours,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, collaborator, logging,
// JWT, and gift escrow configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, catalogCacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	catalogURL, socialGraphURL, logLevel string,
	jwtSecretKey string, jwtExpSecond int, giftExpiryHours int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if catalogCacheTTLSecond, err = strconv.Atoi(getEnv("CATALOG_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "economy-events")

	// Collaborator services
	catalogURL = getEnv("CATALOG_URL", "http://localhost:8081")
	socialGraphURL = getEnv("SOCIAL_GRAPH_URL", "http://localhost:8082")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Gift escrow config
	if giftExpiryHours, err = strconv.Atoi(getEnv("GIFT_EXPIRY_HOURS", "72")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, catalogCacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	catalogURL, socialGraphURL, logLevel string,
	jwtSecretKey string, jwtExpSecond, giftExpiryHours int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for economy events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Collaborator facades
	catalog := facades.NewCatalogHTTPFacade(catalogURL)
	socialGraph := facades.NewSocialGraphHTTPFacade(socialGraphURL)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	accountReadRepo := repositories.NewAccountReadRepository(db, txGetter)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, txGetter)
	inventoryReadRepo := repositories.NewInventoryReadRepository(db, txGetter)
	inventoryWriteRepo := repositories.NewInventoryWriteRepository(db, txGetter)
	giftReadRepo := repositories.NewGiftReadRepository(db, txGetter)
	giftWriteRepo := repositories.NewGiftWriteRepository(db, txGetter)
	purchaseReadRepo := repositories.NewPurchaseReadRepository(db, txGetter)
	purchaseWriteRepo := repositories.NewPurchaseWriteRepository(db, txGetter)
	catalogCache := repositories.NewCatalogCacheRepository(rdb, time.Duration(catalogCacheTTLSecond)*time.Second)

	// Initialize services
	events := services.NewKafkaPublisher(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, accountWriteRepo, tokener)
	ledgerService := services.NewLedgerService(accountWriteRepo, accountReadRepo, events)
	inventoryService := services.NewInventoryService(inventoryWriteRepo, inventoryReadRepo)
	storeService := services.NewStoreService(
		catalog, catalogCache, ledgerService, inventoryService,
		purchaseWriteRepo, purchaseReadRepo, events,
	)
	giftService := services.NewGiftService(
		socialGraph, ledgerService, inventoryService, catalog,
		giftWriteRepo, giftReadRepo, events,
		time.Duration(giftExpiryHours)*time.Hour,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))

	// Protected routes with JWT middleware and a per-request transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Use(middlewares.TxMiddleware(db))

		r.Get("/balance", handlers.NewGetBalanceHandler(ledgerService, tokener))
		r.Post("/wallet/topup", handlers.NewTopupHandler(ledgerService, tokener))

		r.Post("/store/purchase", handlers.NewPurchaseHandler(storeService, tokener))
		r.Get("/store/purchases", handlers.NewListPurchasesHandler(storeService, tokener))

		r.Get("/inventory", handlers.NewListInventoryHandler(inventoryService, tokener))
		r.Post("/inventory/equip", handlers.NewEquipHandler(inventoryService, tokener))
		r.Post("/inventory/unequip", handlers.NewUnequipHandler(inventoryService, tokener))

		r.Post("/gifts", handlers.NewSendGiftHandler(giftService, tokener))
		r.Post("/gifts/{giftID}/accept", handlers.NewAcceptGiftHandler(giftService, tokener))
		r.Post("/gifts/{giftID}/reject", handlers.NewRejectGiftHandler(giftService, tokener))
		r.Get("/gifts/incoming", handlers.NewListIncomingGiftsHandler(giftService, tokener))
		r.Get("/gifts/outgoing", handlers.NewListOutgoingGiftsHandler(giftService, tokener))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
