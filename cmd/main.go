package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-trust-lending/internal/config"
	"github.com/sbilibin2017/gw-trust-lending/internal/facades"
	"github.com/sbilibin2017/gw-trust-lending/internal/handlers"
	"github.com/sbilibin2017/gw-trust-lending/internal/jwt"
	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/metrics"
	"github.com/sbilibin2017/gw-trust-lending/internal/middlewares"
	"github.com/sbilibin2017/gw-trust-lending/internal/repositories"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-trust-lending/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// ledgerHealthService is the gRPC health service name reporting the pause state.
const ledgerHealthService = "lending.Ledger"

// appConfig holds every setting read from the environment.
type appConfig struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	GRPCPort string

	JWTSecret string
	JWTExp    time.Duration

	OwnerAddress common.Address
	PoolAddress  common.Address
	ParamsFile   string

	RateLimitPerMinute float64
	RateLimitBurst     int
}

// @title gw-trust-lending API
// @version 1.0.0
// @description Collateral-free micro-lending ledger: trust scores, pooled liquidity, loans and governance
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, gRPC, JWT and ledger configuration.
func parseConfig(path string) (appConfig, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var (
		cfg  appConfig
		errs []error
	)
	getInt := func(key, defaultValue string) int {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	getAddress := func(key, defaultValue string) common.Address {
		v := getEnv(key, defaultValue)
		if !common.IsHexAddress(v) {
			errs = append(errs, fmt.Errorf("%s: invalid address %q", key, v))
			return common.Address{}
		}
		return common.HexToAddress(v)
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgPort = getInt("POSTGRES_PORT", "5432")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	cfg.PgMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PgMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.RedisExp = time.Duration(getInt("REDIS_EXP_SECOND", "60")) * time.Second

	// Kafka config
	cfg.KafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "lending-events")

	// gRPC health config
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// JWT config
	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = time.Duration(getInt("JWT_EXP_SECOND", "3600")) * time.Second

	// Ledger config
	cfg.OwnerAddress = getAddress("OWNER_ADDRESS", "0x0000000000000000000000000000000000000001")
	cfg.PoolAddress = getAddress("POOL_ADDRESS", "0x00000000000000000000000000000000000000f0")
	cfg.ParamsFile = getEnv("PARAMS_FILE", "")

	// Rate limit config
	perMinute, err := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_MINUTE", "120"), 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_MINUTE: %w", err))
	}
	cfg.RateLimitPerMinute = perMinute
	cfg.RateLimitBurst = getInt("RATE_LIMIT_BURST", "20")

	return cfg, errors.Join(errs...)
}

// routerDeps are the collaborators the HTTP routes are built from.
type routerDeps struct {
	db         *sqlx.DB
	ledger     *services.LedgerService
	auth       *services.AuthService
	tokener    middlewares.Tokener
	wallets    handlers.WalletReader
	limiter    *middlewares.RateLimiter
	swaggerURL string
}

// newRouter wires handlers to routes. Ledger writes are authenticated and rate
// limited; queries are public.
func newRouter(deps routerDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.With(middlewares.TxMiddleware(deps.db)).Post("/register", handlers.NewRegisterHandler(deps.auth))
	r.Post("/login", handlers.NewLoginHandler(deps.auth))

	r.Get("/users/{address}/profile", handlers.NewGetUserProfileHandler(deps.ledger))
	r.Get("/loans/durations", handlers.NewGetLoanDurationLimitsHandler(deps.ledger))
	r.Get("/loans/{address}", handlers.NewGetActiveLoanHandler(deps.ledger))
	r.Get("/lenders/{address}", handlers.NewGetLenderInfoHandler(deps.ledger))
	r.Get("/vouches/{voucher}/{vouchee}", handlers.NewHasVouchedHandler(deps.ledger))
	r.Get("/pool/stats", handlers.NewGetPoolStatsHandler(deps.ledger))
	r.Get("/dao", handlers.NewGetDAOInfoHandler(deps.ledger))
	r.Get("/constants", handlers.NewGetConstantsHandler(deps.ledger))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(deps.tokener))
		r.Use(deps.limiter.Middleware)

		r.Get("/wallet/balance", handlers.NewGetBalanceHandler(deps.wallets))

		r.Post("/lending/deposit", handlers.NewDepositHandler(deps.ledger))
		r.Post("/lending/withdraw", handlers.NewWithdrawHandler(deps.ledger))
		r.Post("/lending/claim", handlers.NewClaimInterestHandler(deps.ledger))

		r.Post("/loans/request", handlers.NewRequestLoanHandler(deps.ledger))
		r.Post("/loans/repay", handlers.NewRepayLoanHandler(deps.ledger))
		r.Post("/loans/{borrower}/default", handlers.NewMarkDefaultHandler(deps.ledger))

		r.Post("/vouch", handlers.NewVouchHandler(deps.ledger))

		r.Route("/governance", func(r chi.Router) {
			r.Post("/dao", handlers.NewEnableDAOHandler(deps.ledger))
			r.Put("/trust", handlers.NewUpdateTrustParametersHandler(deps.ledger))
			r.Put("/rates", handlers.NewUpdateInterestRatesHandler(deps.ledger))
			r.Put("/limits", handlers.NewUpdateBorrowingLimitsHandler(deps.ledger))
			r.Put("/durations", handlers.NewUpdateLoanDurationLimitsHandler(deps.ledger))
			r.Put("/cooldown", handlers.NewUpdateDefaultCooldownHandler(deps.ledger))
			r.Put("/min-loan", handlers.NewUpdateMinLoanAmountHandler(deps.ledger))
			r.Post("/pause", handlers.NewPauseHandler(deps.ledger))
			r.Post("/unpause", handlers.NewUnpauseHandler(deps.ledger))
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.swaggerURL)))

	return r
}

// pauseHook reports the ledger as NOT_SERVING on the gRPC health service while paused.
func pauseHook(hs *health.Server) func(paused bool) {
	return func(paused bool) {
		status := healthpb.HealthCheckResponse_SERVING
		if paused {
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		hs.SetServingStatus(ledgerHealthService, status)
		logger.Log.Infow("ledger health status changed", "paused", paused, "status", status.String())
	}
}

// run initializes the logger, database, Redis, Kafka, gRPC health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg appConfig) error {
	// Initialize logger
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Load protocol parameters
	params, err := config.LoadParameters(cfg.ParamsFile)
	if err != nil {
		return fmt.Errorf("load parameters: %w", err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PgHost, cfg.PgPort, cfg.PgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("postgres migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka event stream
	kafkaWriter := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	defer kafkaWriter.Close()

	// gRPC health
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(ledgerHealthService, healthpb.HealthCheckResponse_SERVING)

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecret), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	walletWriteRepo := repositories.NewWalletWriterRepository(db, middlewares.GetTxFromContext)
	walletReadRepo := repositories.NewWalletReaderRepository(db)
	statsCache := repositories.NewPoolStatsCacheRepository(rdb, cfg.RedisExp)
	// The ledger starts empty, so a snapshot left by a previous process is stale.
	if err := statsCache.DeletePoolStats(ctx); err != nil {
		logger.Log.Warnw("failed to reset pool stats cache", "error", err)
	}

	// Initialize services
	settlement := facades.NewWalletSettlementFacade(db, walletWriteRepo, cfg.PoolAddress)
	ledger, err := services.NewLedgerService(
		cfg.OwnerAddress,
		cfg.PoolAddress,
		params,
		settlement,
		kafkaWriter,
		services.WithStatsCache(statsCache),
		services.WithMetrics(metrics.Ledger()),
		services.WithPauseHook(pauseHook(healthSrv)),
	)
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, services.WithReservedAddresses(cfg.PoolAddress))

	router := newRouter(routerDeps{
		db:      db,
		ledger:  ledger,
		auth:    authService,
		tokener: tokens,
		wallets: walletReadRepo,
		limiter: middlewares.NewRateLimiter(middlewares.RateLimit{
			RequestsPerMinute: cfg.RateLimitPerMinute,
			Burst:             cfg.RateLimitBurst,
		}),
		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcListener, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("grpc listen failed: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("gRPC health server listening on %s", grpcListener.Addr())
		if err := grpcServer.Serve(grpcListener); err != nil {
			errChan <- fmt.Errorf("grpc server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	healthSrv.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("Servers stopped gracefully")
	return nil
}
