package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// LoanRequester defines the interface that the service must implement.
type LoanRequester interface {
	RequestLoan(ctx context.Context, borrower common.Address, amount *uint256.Int, duration time.Duration) (models.LoanView, error)
}

// LoanRepayer defines the interface that the service must implement.
type LoanRepayer interface {
	RepayLoan(ctx context.Context, borrower common.Address) (models.LoanView, error)
}

// DefaultMarker defines the interface that the service must implement.
type DefaultMarker interface {
	MarkDefault(ctx context.Context, caller, borrower common.Address) (models.LoanView, error)
}

// NewRequestLoanHandler returns an HTTP handler issuing a loan to the caller.
// @Summary Request a loan
// @Description Issues an uncollateralized loan sized and priced from the caller's trust score and wallet maturity.
// @Tags loans
// @Accept json
// @Produce json
// @Param request body models.LoanRequest true "Loan Request"
// @Success 200 {object} models.LoanResponse "Loan issued"
// @Failure 400 {object} models.ErrorResponse "AmountBelowMinimum or InvalidDuration"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "ActiveLoanExists or Paused"
// @Failure 422 {object} models.ErrorResponse "ExceedsLimit or InsufficientLiquidity"
// @Failure 425 {object} models.ErrorResponse "CooldownActive"
// @Failure 502 {object} models.ErrorResponse "SettlementFailed"
// @Router /loans/request [post]
// @Security BearerAuth
func NewRequestLoanHandler(svc LoanRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		borrower, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		var req models.LoanRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequestBody")
			return
		}
		amount, err := parseAmount(req.Amount)
		if err != nil {
			writeLedgerError(w, "request_loan", services.ErrInvalidAmount)
			return
		}
		if req.DurationSeconds <= 0 {
			writeLedgerError(w, "request_loan", services.ErrInvalidDuration)
			return
		}

		loan, err := svc.RequestLoan(r.Context(), borrower, amount, time.Duration(req.DurationSeconds)*time.Second)
		if err != nil {
			writeLedgerError(w, "request_loan", err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoanResponse{
			Message: "Loan issued",
			Loan:    loan,
		})
	}
}

// NewRepayLoanHandler returns an HTTP handler settling the caller's active loan in full.
// @Summary Repay the active loan
// @Tags loans
// @Produce json
// @Success 200 {object} models.LoanResponse "Loan repaid"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "NoActiveLoan, LoanNotActive or Paused"
// @Failure 502 {object} models.ErrorResponse "SettlementFailed"
// @Router /loans/repay [post]
// @Security BearerAuth
func NewRepayLoanHandler(svc LoanRepayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		borrower, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		loan, err := svc.RepayLoan(r.Context(), borrower)
		if err != nil {
			writeLedgerError(w, "repay_loan", err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoanResponse{
			Message: "Loan repaid",
			Loan:    loan,
		})
	}
}

// NewMarkDefaultHandler returns an HTTP handler declaring an overdue loan defaulted.
// Any authenticated caller may invoke it, also while the ledger is paused.
// @Summary Mark a loan as defaulted
// @Tags loans
// @Produce json
// @Param borrower path string true "Borrower address"
// @Success 200 {object} models.LoanResponse "Loan defaulted"
// @Failure 400 {object} models.ErrorResponse "InvalidAddress"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "NoActiveLoan or LoanNotActive"
// @Failure 425 {object} models.ErrorResponse "NotOverdue"
// @Router /loans/{borrower}/default [post]
// @Security BearerAuth
func NewMarkDefaultHandler(svc DefaultMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		borrower, err := parseAddress(chi.URLParam(r, "borrower"))
		if err != nil {
			writeLedgerError(w, "mark_default", services.ErrInvalidAddress)
			return
		}

		loan, err := svc.MarkDefault(r.Context(), caller, borrower)
		if err != nil {
			writeLedgerError(w, "mark_default", err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoanResponse{
			Message: "Loan defaulted",
			Loan:    loan,
		})
	}
}
