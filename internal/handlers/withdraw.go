package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// WithdrawWriter defines the interface that the service must implement.
type WithdrawWriter interface {
	Withdraw(ctx context.Context, lender common.Address, amount *uint256.Int) (models.LenderView, error)
}

// NewWithdrawHandler returns an HTTP handler for withdrawing deposited liquidity.
// @Summary Withdraw liquidity
// @Description Returns up to the caller's deposit, limited by liquidity not lent out.
// @Tags lending
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Withdraw Request"
// @Success 200 {object} models.LenderResponse "Withdrawal accepted"
// @Failure 400 {object} models.ErrorResponse "InvalidAmount"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Paused"
// @Failure 422 {object} models.ErrorResponse "InsufficientBalance or InsufficientLiquidity"
// @Failure 502 {object} models.ErrorResponse "SettlementFailed"
// @Router /lending/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lender, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		var req models.AmountRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequestBody")
			return
		}
		amount, err := parseAmount(req.Amount)
		if err != nil {
			writeLedgerError(w, "withdraw", services.ErrInvalidAmount)
			return
		}

		view, err := svc.Withdraw(r.Context(), lender, amount)
		if err != nil {
			writeLedgerError(w, "withdraw", err)
			return
		}

		writeJSON(w, http.StatusOK, models.LenderResponse{
			Message: "Withdrawal accepted",
			Lender:  view,
		})
	}
}
