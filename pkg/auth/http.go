package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	apphttp "github.com/jahpay/ramp-aggregator/pkg/app/http"
)

type nonceRequest struct {
	Address string `json:"address" validate:"required"`
}

type verifyRequest struct {
	Address   string `json:"address" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// Session is returned after a successful signature check.
type Session struct {
	Success   bool   `json:"success"`
	Address   string `json:"address"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// HTTP serves the wallet login endpoints.
type HTTP struct {
	nonces *NonceStore
	tokens *TokenIssuer
	logger *zap.Logger
	secure bool
}

// RegisterRoutes registers /auth/nonce and /auth/verify on r. secureCookie
// marks the session cookie Secure.
func RegisterRoutes(r chi.Router, nonces *NonceStore, tokens *TokenIssuer, secureCookie bool, logger *zap.Logger) {
	h := &HTTP{
		nonces: nonces,
		tokens: tokens,
		logger: logger,
		secure: secureCookie,
	}

	r.Post("/auth/nonce", apphttp.HandleError(h.nonce))
	r.Post("/auth/verify", apphttp.HandleError(h.verify))
}

func (h *HTTP) nonce(w http.ResponseWriter, r *http.Request) error {
	var req nonceRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return apperrors.BadRequestError(err, "Wallet address is required")
	}
	if !ValidateEVMAddress(req.Address) {
		return apperrors.BadRequestError(nil, "invalid wallet address")
	}

	apphttp.WriteJSON(w, http.StatusOK, h.nonces.Issue(req.Address))
	return nil
}

func (h *HTTP) verify(w http.ResponseWriter, r *http.Request) error {
	var req verifyRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return apperrors.BadRequestError(err, "Missing required fields")
	}

	if err := VerifyWalletSignature(req.Address, req.Message, req.Signature); err != nil {
		h.logger.Warn("Signature verification failed",
			zap.String("address", req.Address),
			zap.Error(err))
		return apperrors.UnAuthorizedError(err, "Signature verification failed")
	}

	nonce, ok := NonceFromMessage(req.Message)
	if !ok {
		return apperrors.UnAuthorizedError(nil, "message does not carry a nonce")
	}
	if err := h.nonces.Consume(req.Address, nonce); err != nil {
		if errors.Is(err, ErrNonceExpired) {
			return apperrors.UnAuthorizedError(err, "nonce expired")
		}
		return apperrors.UnAuthorizedError(err, "unknown nonce")
	}

	token, exp, err := h.tokens.Issue(req.Address)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(exp).Seconds()),
	})

	h.logger.Info("Wallet authenticated", zap.String("address", NormalizeAddress(req.Address)))
	apphttp.WriteJSON(w, http.StatusOK, &Session{
		Success:   true,
		Address:   NormalizeAddress(req.Address),
		Token:     token,
		ExpiresAt: exp.UnixMilli(),
	})
	return nil
}
