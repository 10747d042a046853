package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// DepositWriter defines the interface that the service must implement.
type DepositWriter interface {
	Deposit(ctx context.Context, lender common.Address, amount *uint256.Int) (models.LenderView, error)
}

// NewDepositHandler returns an HTTP handler for adding liquidity to the pool.
// @Summary Deposit liquidity
// @Description Moves funds from the caller's wallet into the lending pool and records the lender position.
// @Tags lending
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Deposit Request"
// @Success 200 {object} models.LenderResponse "Deposit accepted"
// @Failure 400 {object} models.ErrorResponse "InvalidAmount"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Paused"
// @Failure 502 {object} models.ErrorResponse "SettlementFailed"
// @Router /lending/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc DepositWriter) http.HandlerFunc {
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
			writeLedgerError(w, "deposit", services.ErrInvalidAmount)
			return
		}

		view, err := svc.Deposit(r.Context(), lender, amount)
		if err != nil {
			writeLedgerError(w, "deposit", err)
			return
		}

		writeJSON(w, http.StatusOK, models.LenderResponse{
			Message: "Deposit accepted",
			Lender:  view,
		})
	}
}
