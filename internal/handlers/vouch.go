package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// Voucher defines the interface that the service must implement.
type Voucher interface {
	VouchForUser(ctx context.Context, voucher, vouchee common.Address) error
}

// NewVouchHandler returns an HTTP handler letting a trusted caller vouch for another user.
// @Summary Vouch for a user
// @Description A caller with trust of at least 500 and two repayments boosts the vouchee's trust score once.
// @Tags social
// @Accept json
// @Produce json
// @Param request body models.VouchRequest true "Vouch Request"
// @Success 200 {object} models.MessageResponse "Vouch recorded"
// @Failure 400 {object} models.ErrorResponse "InvalidAddress or CannotVouchSelf"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "InsufficientTrust or InsufficientHistory"
// @Failure 409 {object} models.ErrorResponse "AlreadyVouched"
// @Router /vouch [post]
// @Security BearerAuth
func NewVouchHandler(svc Voucher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voucher, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		var req models.VouchRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequestBody")
			return
		}
		vouchee, err := parseAddress(req.Vouchee)
		if err != nil {
			writeLedgerError(w, "vouch", services.ErrInvalidAddress)
			return
		}

		if err := svc.VouchForUser(r.Context(), voucher, vouchee); err != nil {
			writeLedgerError(w, "vouch", err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Vouch recorded"})
	}
}
