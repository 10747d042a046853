package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// LedgerReader defines the read-only queries of the ledger.
type LedgerReader interface {
	GetUserProfile(user common.Address) models.UserProfileView
	GetActiveLoan(borrower common.Address) models.LoanView
	GetLenderInfo(lender common.Address) models.LenderView
	PoolStats(ctx context.Context) (models.PoolStats, error)
	GetDAOInfo() models.DAOInfo
	GetConstants() models.Constants
	GetLoanDurationLimits() models.LoanDurationLimits
	HasVouched(voucher, vouchee common.Address) bool
}

// VouchStatusResponse reports whether a vouch pair exists
// swagger:model VouchStatusResponse
type VouchStatusResponse struct {
	Voucher string `json:"voucher"`
	Vouchee string `json:"vouchee"`
	Vouched bool   `json:"vouched"`
}

// addressParam parses a path parameter, writing 400 InvalidAddress on failure
func addressParam(w http.ResponseWriter, r *http.Request, name string) (common.Address, bool) {
	addr, err := parseAddress(chi.URLParam(r, name))
	if err != nil {
		writeLedgerError(w, "query", services.ErrInvalidAddress)
		return common.Address{}, false
	}
	return addr, true
}

// NewGetUserProfileHandler returns the trust profile of an address.
// @Summary Get user profile
// @Description Trust score, history counters, wallet maturity and current borrowing limit.
// @Tags queries
// @Produce json
// @Param address path string true "User address"
// @Success 200 {object} models.UserProfileView
// @Failure 400 {object} models.ErrorResponse "InvalidAddress"
// @Router /users/{address}/profile [get]
func NewGetUserProfileHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := addressParam(w, r, "address")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, svc.GetUserProfile(user))
	}
}

// NewGetActiveLoanHandler returns the loan slot of a borrower.
// @Summary Get loan
// @Tags queries
// @Produce json
// @Param address path string true "Borrower address"
// @Success 200 {object} models.LoanView
// @Failure 400 {object} models.ErrorResponse "InvalidAddress"
// @Router /loans/{address} [get]
func NewGetActiveLoanHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		borrower, ok := addressParam(w, r, "address")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, svc.GetActiveLoan(borrower))
	}
}

// NewGetLenderInfoHandler returns a lender position with its pending interest.
// @Summary Get lender info
// @Tags queries
// @Produce json
// @Param address path string true "Lender address"
// @Success 200 {object} models.LenderView
// @Failure 400 {object} models.ErrorResponse "InvalidAddress"
// @Router /lenders/{address} [get]
func NewGetLenderInfoHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lender, ok := addressParam(w, r, "address")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, svc.GetLenderInfo(lender))
	}
}

// NewGetPoolStatsHandler returns aggregate pool figures.
// @Summary Get pool stats
// @Tags queries
// @Produce json
// @Success 200 {object} models.PoolStats
// @Failure 500 {object} models.ErrorResponse "InternalError"
// @Router /pool/stats [get]
func NewGetPoolStatsHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.PoolStats(r.Context())
		if err != nil {
			writeLedgerError(w, "pool_stats", err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewGetDAOInfoHandler returns owner, DAO and pause state.
// @Summary Get governance state
// @Tags queries
// @Produce json
// @Success 200 {object} models.DAOInfo
// @Router /dao [get]
func NewGetDAOInfoHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.GetDAOInfo())
	}
}

// NewGetConstantsHandler returns design constants with the current parameter values.
// @Summary Get protocol constants
// @Tags queries
// @Produce json
// @Success 200 {object} models.Constants
// @Router /constants [get]
func NewGetConstantsHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.GetConstants())
	}
}

// NewGetLoanDurationLimitsHandler returns the allowed loan terms in seconds.
// @Summary Get loan duration limits
// @Tags queries
// @Produce json
// @Success 200 {object} models.LoanDurationLimits
// @Router /loans/durations [get]
func NewGetLoanDurationLimitsHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.GetLoanDurationLimits())
	}
}

// NewHasVouchedHandler reports whether voucher already vouched for vouchee.
// @Summary Check a vouch
// @Tags queries
// @Produce json
// @Param voucher path string true "Voucher address"
// @Param vouchee path string true "Vouchee address"
// @Success 200 {object} handlers.VouchStatusResponse
// @Failure 400 {object} models.ErrorResponse "InvalidAddress"
// @Router /vouches/{voucher}/{vouchee} [get]
func NewHasVouchedHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voucher, ok := addressParam(w, r, "voucher")
		if !ok {
			return
		}
		vouchee, ok := addressParam(w, r, "vouchee")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, VouchStatusResponse{
			Voucher: voucher.Hex(),
			Vouchee: vouchee.Hex(),
			Vouched: svc.HasVouched(voucher, vouchee),
		})
	}
}
