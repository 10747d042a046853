package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// WalletReader defines the interface that the repository must implement.
type WalletReader interface {
	GetByAddress(ctx context.Context, address common.Address) (*models.WalletDB, error)
}

// BalanceResponse represents the settlement wallet balance of the caller
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Wallet address
	Address string `json:"address"`

	// Balance in base units, decimal string
	// example: 1000000000000000000
	Balance string `json:"balance"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the caller's settlement balance.
// @Summary Get wallet balance
// @Description Returns the balance the settlement substrate holds for the caller's address.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet balance"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "InternalError"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(walletReader WalletReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := callerOrReject(w, r)
		if !ok {
			return
		}

		wallet, err := walletReader.GetByAddress(r.Context(), address)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "address", address.Hex(), "error", err)
			writeError(w, http.StatusInternalServerError, "InternalError")
			return
		}

		resp := BalanceResponse{Address: address.Hex(), Balance: "0"}
		if wallet != nil {
			resp.Balance = wallet.Balance
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
