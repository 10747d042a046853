package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	require.NoError(t, Migrate(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helper ---
func getBalance(t *testing.T, db *sqlx.DB, address common.Address) *uint256.Int {
	var balance string
	err := db.Get(&balance, `SELECT balance::TEXT FROM wallets WHERE address=$1`, address.Hex())
	require.NoError(t, err)
	return uint256.MustFromDecimal(balance)
}

var (
	aliceWallet = common.HexToAddress(aliceAddress)
	bobWallet   = common.HexToAddress(daveAddress)
)

// --- Deposit Tests ---
func TestSaveDeposit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewWalletWriterRepository(db, nil)

	balance, err := writer.SaveDeposit(ctx, aliceWallet, uint256.MustFromDecimal("100000000000000000000"))
	assert.NoError(t, err)
	assert.Equal(t, uint256.MustFromDecimal("100000000000000000000"), balance)

	balance, err = writer.SaveDeposit(ctx, aliceWallet, uint256.NewInt(50))
	assert.NoError(t, err)
	assert.Equal(t, uint256.MustFromDecimal("100000000000000000050"), balance)
	assert.Equal(t, balance, getBalance(t, db, aliceWallet))
}

func TestSaveDeposit_FullWidthAmount(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewWalletWriterRepository(db, nil)
	full := new(uint256.Int).SetAllOne()

	balance, err := writer.SaveDeposit(ctx, aliceWallet, full)
	assert.NoError(t, err)
	assert.Equal(t, full, balance)
}

// --- Withdraw Tests ---
func TestSaveWithdraw(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewWalletWriterRepository(db, nil)

	_, err := writer.SaveWithdraw(ctx, bobWallet, uint256.NewInt(1))
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = writer.SaveDeposit(ctx, bobWallet, uint256.NewInt(200))
	assert.NoError(t, err)

	balance, err := writer.SaveWithdraw(ctx, bobWallet, uint256.NewInt(80))
	assert.NoError(t, err)
	assert.Equal(t, uint256.NewInt(120), balance)

	balance, err = writer.SaveWithdraw(ctx, bobWallet, uint256.NewInt(50))
	assert.NoError(t, err)
	assert.Equal(t, uint256.NewInt(70), balance)

	_, err = writer.SaveWithdraw(ctx, bobWallet, uint256.NewInt(100))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, uint256.NewInt(70), getBalance(t, db, bobWallet))
}

// --- Transaction Tests ---
func TestWalletWriter_UsesTransactionFromContext(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)

	writer := NewWalletWriterRepository(db, func(context.Context) *sqlx.Tx { return tx })
	_, err = writer.SaveDeposit(ctx, aliceWallet, uint256.NewInt(10))
	assert.NoError(t, err)
	require.NoError(t, tx.Rollback())

	reader := NewWalletReaderRepository(db)
	wallet, err := reader.GetByAddress(ctx, aliceWallet)
	assert.NoError(t, err)
	assert.Nil(t, wallet)
}

// --- Concurrency Tests ---
func TestSaveWithdrawConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewWalletWriterRepository(db, nil)
	_, err := writer.SaveDeposit(ctx, aliceWallet, uint256.NewInt(500))
	require.NoError(t, err)

	const numGoroutines = 1000
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = writer.SaveWithdraw(ctx, aliceWallet, uint256.NewInt(1))
		}()
	}
	wg.Wait()

	// Balance never goes below zero.
	assert.Equal(t, new(uint256.Int), getBalance(t, db, aliceWallet))
}

// --- WalletReaderRepository Tests ---
func TestWalletReaderRepository_GetByAddress(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewWalletWriterRepository(db, nil)
	_, err := writer.SaveDeposit(ctx, aliceWallet, uint256.MustFromDecimal("5000000000000000000"))
	require.NoError(t, err)

	reader := NewWalletReaderRepository(db)

	t.Run("Existing wallet", func(t *testing.T) {
		wallet, err := reader.GetByAddress(ctx, aliceWallet)
		assert.NoError(t, err)
		require.NotNil(t, wallet)
		assert.Equal(t, aliceWallet.Hex(), wallet.Address)
		assert.Equal(t, "5000000000000000000", wallet.Balance)
	})

	t.Run("Unknown wallet", func(t *testing.T) {
		wallet, err := reader.GetByAddress(ctx, bobWallet)
		assert.NoError(t, err)
		assert.Nil(t, wallet)
	})
}
