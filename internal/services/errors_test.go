package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		kind services.ErrorKind
		code string
	}{
		{err: services.ErrInvalidAmount, kind: services.KindValidation, code: "InvalidAmount"},
		{err: services.ErrActiveLoanExists, kind: services.KindStateConflict, code: "ActiveLoanExists"},
		{err: services.ErrUnauthorized, kind: services.KindAuthorization, code: "Unauthorized"},
		{err: services.ErrInsufficientLiquidity, kind: services.KindResource, code: "InsufficientLiquidity"},
		{err: services.ErrCooldownActive, kind: services.KindTemporal, code: "CooldownActive"},
		{err: services.ErrSettlementFailed, kind: services.KindSettlement, code: "SettlementFailed"},
		{err: fmt.Errorf("deposit: %w", services.ErrPaused), kind: services.KindStateConflict, code: "Paused"},
		{err: errors.New("boom"), kind: 0, code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.kind, services.KindOf(tt.err))
			assert.Equal(t, tt.code, services.CodeOf(tt.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "ValidationError", services.KindValidation.String())
	assert.Equal(t, "SettlementFailure", services.KindSettlement.String())
	assert.Equal(t, "UnknownError", services.ErrorKind(0).String())
}
