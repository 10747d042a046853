package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email, address, signature string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account bound to a wallet address. The wallet must sign the registration message (EIP-191) to prove ownership. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Username or email already exists / invalid request"
// @Failure 401 {object} models.ErrorResponse "Wallet ownership not proven"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Password, req.Email, req.Address, req.Signature)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username or email already exists")
			case errors.Is(err, services.ErrInvalidWallet):
				writeError(w, http.StatusBadRequest, "Invalid wallet address")
			case errors.Is(err, services.ErrReservedWallet):
				writeError(w, http.StatusBadRequest, "Wallet address is reserved")
			case errors.Is(err, services.ErrInvalidSignature):
				writeError(w, http.StatusUnauthorized, "Wallet ownership not proven")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: "User registered successfully",
		})
	}
}
