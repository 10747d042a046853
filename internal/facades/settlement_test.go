package facades

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-trust-lending/internal/middlewares"
)

// --- Fake wallet writer ---
type walletCall struct {
	op      string
	address common.Address
	amount  *uint256.Int
	inTx    bool
}

type fakeWalletWriter struct {
	calls       []walletCall
	withdrawErr error
	depositErr  error
}

func (f *fakeWalletWriter) SaveDeposit(ctx context.Context, address common.Address, amount *uint256.Int) (*uint256.Int, error) {
	f.calls = append(f.calls, walletCall{"deposit", address, amount, middlewares.GetTxFromContext(ctx) != nil})
	if f.depositErr != nil {
		return nil, f.depositErr
	}
	return amount, nil
}

func (f *fakeWalletWriter) SaveWithdraw(ctx context.Context, address common.Address, amount *uint256.Int) (*uint256.Int, error) {
	f.calls = append(f.calls, walletCall{"withdraw", address, amount, middlewares.GetTxFromContext(ctx) != nil})
	if f.withdrawErr != nil {
		return nil, f.withdrawErr
	}
	return new(uint256.Int), nil
}

var (
	custody = common.HexToAddress("0x2000000000000000000000000000000000000002")
	alice   = common.HexToAddress("0x3000000000000000000000000000000000000003")
	bob     = common.HexToAddress("0x4000000000000000000000000000000000000004")
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

// --- Tests ---
func TestTransfer(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	writer := &fakeWalletWriter{}
	facade := NewWalletSettlementFacade(db, writer, custody)

	err := facade.Transfer(context.Background(), alice, bob, uint256.NewInt(10))
	assert.NoError(t, err)
	assert.Equal(t, []walletCall{
		{"withdraw", alice, uint256.NewInt(10), true},
		{"deposit", bob, uint256.NewInt(10), true},
	}, writer.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferIn_CreditsCustody(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	writer := &fakeWalletWriter{}
	facade := NewWalletSettlementFacade(db, writer, custody)

	err := facade.TransferIn(context.Background(), alice, uint256.NewInt(7))
	assert.NoError(t, err)
	require.Len(t, writer.calls, 2)
	assert.Equal(t, alice, writer.calls[0].address)
	assert.Equal(t, custody, writer.calls[1].address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	writer := &fakeWalletWriter{withdrawErr: sql.ErrNoRows}
	facade := NewWalletSettlementFacade(db, writer, custody)

	err := facade.Transfer(context.Background(), alice, bob, uint256.NewInt(10))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Len(t, writer.calls, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_DepositErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	writer := &fakeWalletWriter{depositErr: errors.New("db error")}
	facade := NewWalletSettlementFacade(db, writer, custody)

	err := facade.Transfer(context.Background(), alice, bob, uint256.NewInt(10))
	assert.EqualError(t, err, "db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	writer := &fakeWalletWriter{}
	facade := NewWalletSettlementFacade(db, writer, custody)

	err := facade.Transfer(context.Background(), alice, bob, uint256.NewInt(10))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Empty(t, writer.calls)
}

func TestTransfer_CommitError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	facade := NewWalletSettlementFacade(db, &fakeWalletWriter{}, custody)

	err := facade.Transfer(context.Background(), alice, bob, uint256.NewInt(10))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_JoinsRequestTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)
	ctx := middlewares.ContextWithTx(context.Background(), tx)

	writer := &fakeWalletWriter{}
	facade := NewWalletSettlementFacade(db, writer, custody)

	err = facade.Transfer(ctx, alice, bob, uint256.NewInt(3))
	assert.NoError(t, err)
	assert.Len(t, writer.calls, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
