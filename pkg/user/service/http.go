package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	apphttp "github.com/jahpay/ramp-aggregator/pkg/app/http"
	"github.com/jahpay/ramp-aggregator/pkg/auth"
	"github.com/jahpay/ramp-aggregator/pkg/user"
)

// HTTP serves the user endpoints.
type HTTP struct {
	svc    Service
	logger *zap.Logger
}

// RegisterRoutes registers the /user endpoints behind wallet authentication
// and the public bank directory.
func RegisterRoutes(r chi.Router, svc Service, tokens *auth.TokenIssuer, logger *zap.Logger) {
	h := &HTTP{svc: svc, logger: logger}

	r.Get("/banks", apphttp.HandleError(h.banks))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireWallet(tokens))
		r.Get("/user/bank-accounts", apphttp.HandleError(h.list))
		r.Post("/user/bank-accounts", apphttp.HandleError(h.add))
		r.Get("/user/profile", apphttp.HandleError(h.profile))
		r.Put("/user/profile", apphttp.HandleError(h.updateProfile))
		r.Get("/user/kyc-status", apphttp.HandleError(h.kycStatus))
	})
}

func walletFrom(r *http.Request) (string, error) {
	wallet, ok := auth.WalletAddressFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "Unauthorized: No wallet address")
	}
	return wallet, nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	resp, err := h.svc.ListBankAccounts(r.Context(), wallet)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) add(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	var req user.AddBankAccountRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	account, err := h.svc.AddBankAccount(r.Context(), wallet, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, account)
	return nil
}

func (h *HTTP) profile(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	profile, err := h.svc.GetProfile(r.Context(), wallet)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, profile)
	return nil
}

func (h *HTTP) updateProfile(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	var req user.UpdateProfileRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.svc.UpdateProfile(r.Context(), wallet, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) kycStatus(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	resp, err := h.svc.GetKYCStatus(r.Context(), wallet)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) banks(w http.ResponseWriter, r *http.Request) error {
	country := r.URL.Query().Get("country")
	if country == "" {
		return apperrors.BadRequestError(nil, "country is required")
	}

	resp, err := h.svc.SupportedBanks(r.Context(), country)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
