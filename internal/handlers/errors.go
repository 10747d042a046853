package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/middlewares"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

var (
	errInvalidBody    = errors.New("invalid request body")
	errInvalidAddress = errors.New("invalid address")
)

// statusFor maps a ledger rejection to its HTTP status
func statusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindStateConflict:
		return http.StatusConflict
	case services.KindAuthorization:
		return http.StatusForbidden
	case services.KindResource:
		return http.StatusUnprocessableEntity
	case services.KindTemporal:
		return http.StatusTooEarly
	case services.KindSettlement:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, models.ErrorResponse{Error: code})
}

// writeLedgerError reports a failed ledger operation as {"error": code}
func writeLedgerError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	code := services.CodeOf(err)
	if code == "" {
		code = "InternalError"
	}

	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("ledger operation failed", "op", op, "error", err)
	} else {
		logger.Log.Warnw("ledger operation rejected", "op", op, "code", code)
	}
	writeError(w, status, code)
}

// callerOrReject returns the authenticated wallet address, writing 401 when absent
func callerOrReject(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return caller, ok
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errInvalidBody
	}
	return nil
}

// parseAmount accepts a base-10 integer string that fits in 256 bits
func parseAmount(s string) (*uint256.Int, error) {
	return uint256.FromDecimal(s)
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errInvalidAddress
	}
	return common.HexToAddress(s), nil
}
