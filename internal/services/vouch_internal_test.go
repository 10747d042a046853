package services

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

func TestLedgerService_VouchForUser_RequiresHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := common.HexToAddress("0x1000000000000000000000000000000000000001")
	pool := common.HexToAddress("0x2000000000000000000000000000000000000002")
	voucher := common.HexToAddress("0x3000000000000000000000000000000000000003")
	vouchee := common.HexToAddress("0x4000000000000000000000000000000000000004")

	svc, err := NewLedgerService(owner, pool, DefaultParameters(), NewMockSettlement(ctrl), nil)
	require.NoError(t, err)

	svc.profiles[voucher] = &models.UserProfile{TrustScore: 800, TrustInitialized: true, SuccessfulRepayments: 1}
	err = svc.VouchForUser(context.Background(), voucher, vouchee)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
	assert.Equal(t, KindAuthorization, KindOf(err))
	assert.Nil(t, svc.profiles[vouchee])

	svc.profiles[voucher].SuccessfulRepayments = 2
	assert.NoError(t, svc.VouchForUser(context.Background(), voucher, vouchee))
	assert.Equal(t, uint64(1), svc.profiles[voucher].TotalTransactions)
}
