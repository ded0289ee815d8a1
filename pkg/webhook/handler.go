package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/internal/metrics"
	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	apphttp "github.com/jahpay/ramp-aggregator/pkg/app/http"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	"github.com/jahpay/ramp-aggregator/pkg/user"
)

const maxPayloadSize = 1 << 20

// Transactions is the read side of the lifecycle store used to correlate
// deliveries with recorded transactions.
type Transactions interface {
	List(ctx context.Context, filters transaction.Filters) []*transaction.Transaction
}

// KYCRecorder stores provider KYC decisions. userID is a wallet address or
// a profile id.
type KYCRecorder interface {
	RecordKYC(ctx context.Context, userID string, status user.KYCStatus, documentType string) error
}

// Payload holds the fields providers send. Unknown fields are ignored.
type Payload struct {
	Event         string `json:"event"`
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	Error         string `json:"error"`
	TxHash        string `json:"tx_hash"`
	UserID        string `json:"user_id"`
	Reason        string `json:"reason"`
	DocumentType  string `json:"document_type"`
}

func (p *Payload) reference(field string) string {
	if field == "order_id" {
		return p.OrderID
	}
	return p.TransactionID
}

// Handler verifies and dispatches provider webhooks.
type Handler struct {
	specs  map[string]Spec
	txs    Transactions
	kyc    KYCRecorder
	logger *zap.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithKYCRecorder stores kyc.* events. Without it they are only logged.
func WithKYCRecorder(k KYCRecorder) Option {
	return func(h *Handler) { h.kyc = k }
}

// NewHandler creates a webhook handler for specs.
func NewHandler(specs []Spec, txs Transactions, logger *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		specs:  make(map[string]Spec, len(specs)),
		txs:    txs,
		logger: logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	for _, s := range specs {
		if s.Secret == "" {
			logger.Warn("webhook secret not configured, deliveries will be rejected",
				zap.String("provider", s.Provider))
		}
		h.specs[s.Provider] = s
	}
	return h
}

// RegisterRoutes registers POST /webhooks/{provider} on r.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/webhooks/{provider}", apphttp.HandleError(h.receive))
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "provider")
	spec, ok := h.specs[name]
	if !ok {
		return apperrors.ResourceNotFoundError(nil, "Unknown provider")
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	signature := strings.TrimSpace(r.Header.Get(spec.SignatureHeader))
	if signature == "" {
		metrics.WebhookEvents.WithLabelValues(name, "", "missing_signature").Inc()
		return apperrors.UnAuthorizedError(nil, "Missing signature")
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if !Verify(spec.Secret, compact.Bytes(), signature) {
		metrics.WebhookEvents.WithLabelValues(name, "", "invalid_signature").Inc()
		h.logger.Warn("webhook signature mismatch", zap.String("provider", name))
		return apperrors.UnAuthorizedError(nil, "Invalid signature")
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	h.dispatch(r.Context(), spec, &payload)

	apphttp.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
	return nil
}

// dispatch logs a verified delivery and records KYC decisions. Transactions
// are never changed here; provider state is pulled through retries.
func (h *Handler) dispatch(ctx context.Context, spec Spec, p *Payload) {
	ref := p.reference(spec.ReferenceField)
	fields := []zap.Field{
		zap.String("provider", spec.Provider),
		zap.String("event", p.Event),
		zap.String("reference", ref),
	}

	outcome, known := spec.Events[p.Event]
	if !known {
		metrics.WebhookEvents.WithLabelValues(spec.Provider, p.Event, "unknown").Inc()
		h.logger.Warn("unknown webhook event", fields...)
		return
	}
	fields = append(fields,
		zap.Stringer("outcome", outcome),
		zap.String("status", p.Status),
		zap.String("user_id", p.UserID),
		zap.String("reason", p.Reason),
		zap.String("tx_hash", p.TxHash),
		zap.String("error", p.Error),
	)

	if status, ok := kycStatus(outcome); ok {
		h.recordKYC(ctx, spec, p, status, fields)
		return
	}

	tx := h.lookup(ctx, spec.Provider, ref)
	if tx == nil {
		metrics.WebhookEvents.WithLabelValues(spec.Provider, p.Event, "unmatched").Inc()
		h.logger.Info("webhook received", fields...)
		return
	}
	metrics.WebhookEvents.WithLabelValues(spec.Provider, p.Event, "matched").Inc()
	h.logger.Info("webhook received", append(fields,
		zap.String("transaction_id", tx.ID),
		zap.String("transaction_status", string(tx.Status)))...)
}

// lookup finds the transaction providerName knows as ref.
func (h *Handler) lookup(ctx context.Context, providerName, ref string) *transaction.Transaction {
	if ref == "" || h.txs == nil {
		return nil
	}
	for _, m := range h.txs.List(ctx, transaction.Filters{ProviderID: ref}) {
		if m.Metadata.ProviderName == providerName {
			return m
		}
	}
	return nil
}

func kycStatus(o Outcome) (user.KYCStatus, bool) {
	switch o {
	case OutcomeKYCVerified:
		return user.KYCVerified, true
	case OutcomeKYCRejected:
		return user.KYCRejected, true
	default:
		return "", false
	}
}

func (h *Handler) recordKYC(ctx context.Context, spec Spec, p *Payload, status user.KYCStatus, fields []zap.Field) {
	if h.kyc == nil || p.UserID == "" {
		metrics.WebhookEvents.WithLabelValues(spec.Provider, p.Event, "unmatched").Inc()
		h.logger.Info("webhook received", fields...)
		return
	}
	if err := h.kyc.RecordKYC(ctx, p.UserID, status, p.DocumentType); err != nil {
		metrics.WebhookEvents.WithLabelValues(spec.Provider, p.Event, "kyc_failed").Inc()
		h.logger.Warn("failed to record kyc decision", append(fields, zap.NamedError("record_error", err))...)
		return
	}
	metrics.WebhookEvents.WithLabelValues(spec.Provider, p.Event, "kyc_recorded").Inc()
	h.logger.Info("webhook received", append(fields, zap.String("kyc_status", string(status)))...)
}
