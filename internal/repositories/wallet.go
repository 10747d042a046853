package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// WalletWriterRepository handles settlement wallet balance changes
type WalletWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriterRepository {
	return &WalletWriterRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveDeposit credits amount to the wallet, creating it if it does not exist,
// and returns the new balance.
func (r *WalletWriterRepository) SaveDeposit(ctx context.Context, address common.Address, amount *uint256.Int) (*uint256.Int, error) {
	query := `
		INSERT INTO wallets (address, balance, created_at, updated_at)
		VALUES ($1, $2::NUMERIC, NOW(), NOW())
		ON CONFLICT (address)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance::TEXT
	`

	var balance string
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, address.Hex(), amount.Dec())

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{address.Hex(), amount.Dec()},
		"result", balance,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return uint256.FromDecimal(balance)
}

// SaveWithdraw debits amount from the wallet in a single query. It returns
// sql.ErrNoRows when the wallet is missing or its balance is too low.
func (r *WalletWriterRepository) SaveWithdraw(ctx context.Context, address common.Address, amount *uint256.Int) (*uint256.Int, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $2::NUMERIC, updated_at = NOW()
		WHERE address = $1 AND balance >= $2::NUMERIC
		RETURNING balance::TEXT
	`

	var balance string
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, address.Hex(), amount.Dec())

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{address.Hex(), amount.Dec()},
		"result", balance,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return uint256.FromDecimal(balance)
}

// WalletReaderRepository handles settlement wallet reads
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetByAddress returns the wallet record, or nil when the address never held funds
func (r *WalletReaderRepository) GetByAddress(ctx context.Context, address common.Address) (*models.WalletDB, error) {
	const query = `
		SELECT address, balance::TEXT AS balance, created_at, updated_at
		FROM wallets
		WHERE address = $1
	`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, address.Hex())

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{address.Hex()},
		"result", wallet.Balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
