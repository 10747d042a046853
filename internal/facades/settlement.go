package facades

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/middlewares"
)

// ErrInsufficientFunds is returned when the paying wallet cannot cover a transfer.
var ErrInsufficientFunds = errors.New("insufficient wallet funds")

// WalletWriter applies balance changes to settlement wallets.
type WalletWriter interface {
	SaveDeposit(ctx context.Context, address common.Address, amount *uint256.Int) (*uint256.Int, error)
	SaveWithdraw(ctx context.Context, address common.Address, amount *uint256.Int) (*uint256.Int, error)
}

// WalletSettlementFacade settles ledger transfers against the postgres wallets
// table. Each transfer debits and credits in one transaction.
type WalletSettlementFacade struct {
	db      *sqlx.DB
	writer  WalletWriter
	custody common.Address
}

// NewWalletSettlementFacade creates a facade whose pool funds are held at custody.
func NewWalletSettlementFacade(db *sqlx.DB, writer WalletWriter, custody common.Address) *WalletSettlementFacade {
	return &WalletSettlementFacade{db: db, writer: writer, custody: custody}
}

// Transfer moves amount from one wallet to another.
func (f *WalletSettlementFacade) Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	return f.inTx(ctx, func(ctx context.Context) error {
		if _, err := f.writer.SaveWithdraw(ctx, from, amount); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return err
		}
		_, err := f.writer.SaveDeposit(ctx, to, amount)
		return err
	})
}

// TransferIn moves amount from a wallet into pool custody.
func (f *WalletSettlementFacade) TransferIn(ctx context.Context, from common.Address, amount *uint256.Int) error {
	return f.Transfer(ctx, from, f.custody, amount)
}

// inTx runs fn inside the request transaction when there is one, and inside a
// transaction of its own otherwise.
func (f *WalletSettlementFacade) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if middlewares.GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := f.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin settlement transaction", "error", err)
		return err
	}

	if err := fn(middlewares.ContextWithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to roll back settlement", "error", rbErr)
		}
		logger.Log.Warnw("settlement rejected", "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit settlement", "error", err)
		return err
	}
	return nil
}
