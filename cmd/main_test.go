package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-trust-lending/internal/jwt"
	"github.com/sbilibin2017/gw-trust-lending/internal/middlewares"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	assert.Equal(t, "localhost", cfg.PgHost)
	assert.Equal(t, 5432, cfg.PgPort)
	assert.Equal(t, "user", cfg.PgUser)
	assert.Equal(t, "password", cfg.PgPassword)
	assert.Equal(t, "database", cfg.PgDB)
	assert.Equal(t, 16, cfg.PgMaxOpenConns)
	assert.Equal(t, 8, cfg.PgMaxIdleConns)

	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.RedisPassword)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)
	assert.Equal(t, 60*time.Second, cfg.RedisExp)

	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "lending-events", cfg.KafkaTopic)
	assert.Equal(t, "50051", cfg.GRPCPort)

	assert.Equal(t, "my_super_secret_key", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExp)

	assert.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000000001"), cfg.OwnerAddress)
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000f0"), cfg.PoolAddress)
	assert.Empty(t, cfg.ParamsFile)

	assert.Equal(t, 120.0, cfg.RateLimitPerMinute)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_LOG_FORMAT", "console")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_EXP_SECOND", "120")

	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("KAFKA_TOPIC", "ledger")
	t.Setenv("GRPC_PORT", "50052")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")

	t.Setenv("OWNER_ADDRESS", "0x00000000000000000000000000000000000000aa")
	t.Setenv("POOL_ADDRESS", "0x00000000000000000000000000000000000000bb")
	t.Setenv("PARAMS_FILE", "params.toml")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "pg.example.com", cfg.PgHost)
	assert.Equal(t, 5433, cfg.PgPort)
	assert.Equal(t, 20, cfg.PgMaxOpenConns)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 120*time.Second, cfg.RedisExp)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "ledger", cfg.KafkaTopic)
	assert.Equal(t, "50052", cfg.GRPCPort)
	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, 300*time.Second, cfg.JWTExp)
	assert.Equal(t, common.HexToAddress("0xaa"), cfg.OwnerAddress)
	assert.Equal(t, common.HexToAddress("0xbb"), cfg.PoolAddress)
	assert.Equal(t, "params.toml", cfg.ParamsFile)
	assert.Equal(t, 30.0, cfg.RateLimitPerMinute)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestParseConfig_InvalidValues(t *testing.T) {
	resetEnv()
	t.Setenv("POSTGRES_PORT", "not-a-port")
	t.Setenv("OWNER_ADDRESS", "0xnothex")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "fast")

	_, err := parseConfig("nonexistent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_PORT")
	assert.Contains(t, err.Error(), "OWNER_ADDRESS")
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_MINUTE")
}

func TestPauseHook(t *testing.T) {
	hs := health.NewServer()
	hook := pauseHook(hs)
	req := &healthpb.HealthCheckRequest{Service: ledgerHealthService}

	hook(true)
	resp, err := hs.Check(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)

	hook(false)
	resp, err = hs.Check(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

// fakeSettlement accepts every transfer and counts the calls.
type fakeSettlement struct {
	mu       sync.Mutex
	inbound  int
	outbound int
}

func (f *fakeSettlement) Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outbound++
	return nil
}

func (f *fakeSettlement) TransferIn(ctx context.Context, from common.Address, amount *uint256.Int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inbound++
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, *jwt.JWT, *fakeSettlement) {
	t.Helper()

	settlement := &fakeSettlement{}
	ledger, err := services.NewLedgerService(
		common.HexToAddress("0x01"),
		common.HexToAddress("0xf0"),
		services.DefaultParameters(),
		settlement,
		nil,
	)
	require.NoError(t, err)

	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))
	router := newRouter(routerDeps{
		ledger:  ledger,
		auth:    services.NewAuthService(nil, nil, tokens),
		tokener: tokens,
		limiter: middlewares.NewRateLimiter(middlewares.RateLimit{RequestsPerMinute: 600, Burst: 10}),
	})
	return router, tokens, settlement
}

func TestRouter_PublicQueries(t *testing.T) {
	router, _, _ := newTestRouter(t)

	tests := []struct {
		name string
		path string
	}{
		{name: "constants", path: "/constants"},
		{name: "dao", path: "/dao"},
		{name: "pool stats", path: "/pool/stats"},
		{name: "durations", path: "/loans/durations"},
		{name: "metrics", path: "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRouter_DAOInfo(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dao", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var info models.DAOInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, common.HexToAddress("0x01"), info.Owner)
	assert.False(t, info.DAOEnabled)
	assert.False(t, info.Paused)
}

func TestRouter_ProtectedRequiresToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/lending/deposit", strings.NewReader(`{"amount":"1000"}`))
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_DepositWithToken(t *testing.T) {
	router, tokens, settlement := newTestRouter(t)
	lender := common.HexToAddress("0xa1")

	token, err := tokens.Generate(context.Background(), uuid.New(), lender)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/lending/deposit", strings.NewReader(`{"amount":"1000"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LenderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Deposit accepted", resp.Message)
	assert.Equal(t, uint64(1000), resp.Lender.DepositedAmount.Uint64())
	assert.Equal(t, 1, settlement.inbound)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/lenders/"+lender.Hex(), nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_GovernanceRejectsNonOwner(t *testing.T) {
	router, tokens, _ := newTestRouter(t)

	token, err := tokens.Generate(context.Background(), uuid.New(), common.HexToAddress("0xa1"))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/governance/pause", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// Kafka writers connect lazily, so no broker is needed for startup.
	cfg := appConfig{
		AppHost:            "127.0.0.1",
		AppPort:            "8086",
		LogLevel:           "debug",
		LogFormat:          "json",
		PgHost:             pgHost,
		PgPort:             pgPort.Int(),
		PgUser:             "user",
		PgPassword:         "password",
		PgDB:               "testdb",
		PgMaxOpenConns:     5,
		PgMaxIdleConns:     2,
		RedisHost:          redisHost,
		RedisPort:          redisPort.Int(),
		RedisPoolSize:      10,
		RedisExp:           time.Minute,
		KafkaBrokers:       []string{"127.0.0.1:9092"},
		KafkaTopic:         "lending-events",
		GRPCPort:           "0",
		JWTSecret:          "testsecret",
		JWTExp:             time.Minute,
		OwnerAddress:       common.HexToAddress("0x01"),
		PoolAddress:        common.HexToAddress("0xf0"),
		RateLimitPerMinute: 60,
		RateLimitBurst:     10,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
