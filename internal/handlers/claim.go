package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// InterestClaimer defines the interface that the service must implement.
type InterestClaimer interface {
	ClaimInterest(ctx context.Context, lender common.Address) (*uint256.Int, error)
}

// NewClaimInterestHandler returns an HTTP handler paying out the caller's interest share.
// @Summary Claim interest
// @Description Pays the caller's pro-rata share of the interest pool.
// @Tags lending
// @Produce json
// @Success 200 {object} models.ClaimResponse "Interest claimed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Paused"
// @Failure 422 {object} models.ErrorResponse "NoInterestAvailable"
// @Failure 502 {object} models.ErrorResponse "SettlementFailed"
// @Router /lending/claim [post]
// @Security BearerAuth
func NewClaimInterestHandler(svc InterestClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lender, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		share, err := svc.ClaimInterest(r.Context(), lender)
		if err != nil {
			writeLedgerError(w, "claim_interest", err)
			return
		}

		writeJSON(w, http.StatusOK, models.ClaimResponse{
			Message: "Interest claimed",
			Amount:  share.Dec(),
		})
	}
}
