package service

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	apphttp "github.com/jahpay/ramp-aggregator/pkg/app/http"
	"github.com/jahpay/ramp-aggregator/pkg/auth"
	"github.com/jahpay/ramp-aggregator/pkg/ramp"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
)

// HTTP serves the provider and ramp endpoints.
type HTTP struct {
	svc    Service
	logger *zap.Logger
}

// RegisterRoutes registers the public provider routes and the wallet-scoped
// ramp routes on r.
func RegisterRoutes(r chi.Router, svc Service, tokens *auth.TokenIssuer, logger *zap.Logger) {
	h := &HTTP{svc: svc, logger: logger}

	r.Get("/providers", apphttp.HandleError(h.providers))
	r.Get("/providers/rates", apphttp.HandleError(h.rates))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireWallet(tokens))
		r.Post("/ramp/on-ramp/initiate", apphttp.HandleError(h.initiateOnRamp))
		r.Post("/ramp/off-ramp/initiate", apphttp.HandleError(h.initiateOffRamp))
		r.Get("/ramp/transactions", apphttp.HandleError(h.listTransactions))
		r.Get("/ramp/transaction/{id}", apphttp.HandleError(h.getTransaction))
		r.Post("/ramp/transaction/{id}/retry", apphttp.HandleError(h.retryTransaction))
		r.Get("/ramp/stats", apphttp.HandleError(h.stats))
	})
}

func (h *HTTP) providers(w http.ResponseWriter, r *http.Request) error {
	apphttp.WriteJSON(w, http.StatusOK, h.svc.ListProviders(r.Context()))
	return nil
}

func (h *HTTP) rates(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	resp, err := h.svc.Rates(r.Context(), q.Get("from"), q.Get("to"), q.Get("amount"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) initiateOnRamp(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	var req ramp.OnRampRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.svc.InitiateOnRamp(r.Context(), wallet, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) initiateOffRamp(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	var req ramp.OffRampRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.svc.InitiateOffRamp(r.Context(), wallet, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) getTransaction(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	tx, err := h.svc.GetTransaction(r.Context(), wallet, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, tx)
	return nil
}

func (h *HTTP) listTransactions(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	q, err := parseListQuery(r)
	if err != nil {
		return err
	}

	resp, err := h.svc.ListTransactions(r.Context(), wallet, q)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) retryTransaction(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletFrom(r)
	if err != nil {
		return err
	}

	result, err := h.svc.RetryTransaction(r.Context(), wallet, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, result)
	return nil
}

func (h *HTTP) stats(w http.ResponseWriter, r *http.Request) error {
	apphttp.WriteJSON(w, http.StatusOK, h.svc.Stats(r.Context()))
	return nil
}

func walletFrom(r *http.Request) (string, error) {
	wallet, ok := auth.WalletAddressFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "Unauthorized: No wallet address")
	}
	return wallet, nil
}

// typeAliases maps the web client's ramp names onto transaction types.
var typeAliases = map[string]transaction.Type{
	"on-ramp":  transaction.TypeDeposit,
	"off-ramp": transaction.TypeWithdrawal,
}

func parseListQuery(r *http.Request) (ramp.ListQuery, error) {
	values := r.URL.Query()
	var q ramp.ListQuery

	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &q.Limit}, {"offset", &q.Offset}} {
		raw := values.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, apperrors.BadRequestError(err, "invalid "+p.name)
		}
		*p.dst = n
	}

	for _, raw := range splitList(values.Get("status")) {
		st, err := transaction.ParseStatus(raw)
		if err != nil {
			return q, apperrors.BadRequestError(err, "invalid status")
		}
		q.Status = append(q.Status, st)
	}

	for _, raw := range splitList(values.Get("type")) {
		if t, ok := typeAliases[strings.ToLower(raw)]; ok {
			q.Type = append(q.Type, t)
			continue
		}
		t, err := transaction.ParseType(raw)
		if err != nil {
			return q, apperrors.BadRequestError(err, "invalid type")
		}
		q.Type = append(q.Type, t)
	}
	return q, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
