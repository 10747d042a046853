package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// Governor defines the parameter store operations exposed over HTTP.
type Governor interface {
	EnableDAO(ctx context.Context, caller, authority common.Address) error
	UpdateTrustParameters(ctx context.Context, caller common.Address, increase, decrease uint64) error
	UpdateInterestRates(ctx context.Context, caller common.Address, base, maxRate uint64) error
	UpdateBorrowingLimits(ctx context.Context, caller common.Address, low, medium, high *uint256.Int) error
	UpdateLoanDurationLimits(ctx context.Context, caller common.Address, minDur, maxDur time.Duration) error
	UpdateDefaultCooldown(ctx context.Context, caller common.Address, period time.Duration) error
	UpdateMinLoanAmount(ctx context.Context, caller common.Address, amount *uint256.Int) error
	Pause(ctx context.Context, caller common.Address) error
	Unpause(ctx context.Context, caller common.Address) error
}

// governanceHandler decodes the request body into T and applies it as caller
func governanceHandler[T any](op, message string, apply func(ctx context.Context, caller common.Address, req T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		var req T
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequestBody")
			return
		}

		if err := apply(r.Context(), caller, req); err != nil {
			writeLedgerError(w, op, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: message})
	}
}

func seconds(s int64) time.Duration {
	return time.Duration(s) * time.Second
}

// NewEnableDAOHandler hands governance over to a DAO authority.
// @Summary Enable DAO governance
// @Tags governance
// @Accept json
// @Produce json
// @Param request body models.EnableDAORequest true "DAO authority"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "InvalidAddress"
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "DAOAlreadyEnabled"
// @Router /governance/dao [post]
// @Security BearerAuth
func NewEnableDAOHandler(svc Governor) http.HandlerFunc {
	return governanceHandler("enable_dao", "DAO enabled", func(ctx context.Context, caller common.Address, req models.EnableDAORequest) error {
		authority, err := parseAddress(req.Authority)
		if err != nil {
			return services.ErrInvalidAddress
		}
		return svc.EnableDAO(ctx, caller, authority)
	})
}

// NewUpdateTrustParametersHandler changes how far repayments and defaults move trust.
// @Summary Update trust increase and decrease
// @Tags governance
// @Accept json
// @Produce json
// @Param request body models.TrustParametersRequest true "Trust parameters"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "InvalidParameter"
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Router /governance/trust [put]
// @Security BearerAuth
func NewUpdateTrustParametersHandler(svc Governor) http.HandlerFunc {
	return governanceHandler("update_trust_parameters", "Trust parameters updated", func(ctx context.Context, caller common.Address, req models.TrustParametersRequest) error {
		return svc.UpdateTrustParameters(ctx, caller, req.Increase, req.Decrease)
	})
}

// NewUpdateInterestRatesHandler changes the rate floor and ceiling.
// @Summary Update base and max interest rates
// @Tags governance
// @Accept json
// @Produce json
// @Param request body models.InterestRatesRequest true "Interest rates in basis points"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "InvalidParameter"
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Router /governance/rates [put]
// @Security BearerAuth
func NewUpdateInterestRatesHandler(svc Governor) http.HandlerFunc {
	return governanceHandler("update_interest_rates", "Interest rates updated", func(ctx context.Context, caller common.Address, req models.InterestRatesRequest) error {
		return svc.UpdateInterestRates(ctx, caller, req.Base, req.Max)
	})
}

// NewUpdateBorrowingLimitsHandler changes the base limit of each trust tier.
// @Summary Update per-tier borrowing limits
// @Tags governance
// @Accept json
// @Produce json
// @Param request body models.BorrowingLimitsRequest true "Limits in base units"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "InvalidParameter"
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Router /governance/limits [put]
// @Security BearerAuth
func NewUpdateBorrowingLimitsHandler(svc Governor) http.HandlerFunc {
	return governanceHandler("update_borrowing_limits", "Borrowing limits updated", func(ctx context.Context, caller common.Address, req models.BorrowingLimitsRequest) error {
		low, err := parseAmount(req.Low)
		if err != nil {
			return services.ErrInvalidParameter
		}
		medium, err := parseAmount(req.Medium)
		if err != nil {
			return services.ErrInvalidParameter
		}
		high, err := parseAmount(req.High)
		if err != nil {
			return services.ErrInvalidParameter
		}
		return svc.UpdateBorrowingLimits(ctx, caller, low, medium, high)
	})
}

// NewUpdateLoanDurationLimitsHandler changes the allowed loan terms.
// @Summary Update the allowed loan term range
// @Tags governance
// @Accept json
// @Produce json
// @Param request body models.DurationLimitsRequest true "Duration limits in seconds"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "InvalidDuration"
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Router /governance/durations [put]
// @Security BearerAuth
func NewUpdateLoanDurationLimitsHandler(svc Governor) http.HandlerFunc {
	return governanceHandler("update_duration_limits", "Loan duration limits updated", func(ctx context.Context, caller common.Address, req models.DurationLimitsRequest) error {
		return svc.UpdateLoanDurationLimits(ctx, caller, seconds(req.MinSeconds), seconds(req.MaxSeconds))
	})
}

// NewUpdateDefaultCooldownHandler changes the wait after a default.
// @Summary Update the post-default cooldown
// @Tags governance
// @Accept json
// @Produce json
// @Param request body models.CooldownRequest true "Cooldown in seconds"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "InvalidParameter"
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Router /governance/cooldown [put]
// @Security BearerAuth
func NewUpdateDefaultCooldownHandler(svc Governor) http.HandlerFunc {
	return governanceHandler("update_default_cooldown", "Default cooldown updated", func(ctx context.Context, caller common.Address, req models.CooldownRequest) error {
		return svc.UpdateDefaultCooldown(ctx, caller, seconds(req.PeriodSeconds))
	})
}

// NewUpdateMinLoanAmountHandler changes the smallest principal a borrower may request.
// @Summary Update the minimum loan principal
// @Tags governance
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Minimum amount in base units"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "InvalidParameter"
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Router /governance/min-loan [put]
// @Security BearerAuth
func NewUpdateMinLoanAmountHandler(svc Governor) http.HandlerFunc {
	return governanceHandler("update_min_loan_amount", "Minimum loan amount updated", func(ctx context.Context, caller common.Address, req models.AmountRequest) error {
		amount, err := parseAmount(req.Amount)
		if err != nil {
			return services.ErrInvalidParameter
		}
		return svc.UpdateMinLoanAmount(ctx, caller, amount)
	})
}

// NewPauseHandler stops deposits, withdrawals, claims, loan requests and repayments.
// @Summary Pause the ledger
// @Tags governance
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Paused"
// @Router /governance/pause [post]
// @Security BearerAuth
func NewPauseHandler(svc Governor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerOrReject(w, r)
		if !ok {
			return
		}
		if err := svc.Pause(r.Context(), caller); err != nil {
			writeLedgerError(w, "pause", err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Ledger paused"})
	}
}

// NewUnpauseHandler resumes gated operations.
// @Summary Unpause the ledger
// @Tags governance
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 403 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "NotPaused"
// @Router /governance/unpause [post]
// @Security BearerAuth
func NewUnpauseHandler(svc Governor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerOrReject(w, r)
		if !ok {
			return
		}
		if err := svc.Unpause(r.Context(), caller); err != nil {
			writeLedgerError(w, "unpause", err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Ledger unpaused"})
	}
}
