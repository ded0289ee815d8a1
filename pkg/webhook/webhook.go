// Package webhook receives signed provider callbacks, verifies them and
// acknowledges them. KYC decisions are recorded on the user profile;
// transactions are only looked up.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/jahpay/ramp-aggregator/pkg/config"
)

// Outcome is what a provider event reports.
type Outcome int

const (
	// OutcomeInfo carries nothing to act on.
	OutcomeInfo Outcome = iota
	OutcomeCompleted
	OutcomeFailed
	OutcomeCancelled
	OutcomeKYCVerified
	OutcomeKYCRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeKYCVerified:
		return "kyc_verified"
	case OutcomeKYCRejected:
		return "kyc_rejected"
	default:
		return "info"
	}
}

// Spec describes one provider's webhook contract.
type Spec struct {
	Provider        string
	SignatureHeader string
	Secret          string
	// ReferenceField names the payload field holding the provider's
	// transaction reference.
	ReferenceField string
	Events         map[string]Outcome
}

// Specs returns the webhook contract of every known provider, with secrets
// taken from cfg.
func Specs(cfg config.ProvidersConfig) []Spec {
	return []Spec{
		{
			Provider:        config.ProviderYellowCard,
			SignatureHeader: "X-Yellowcard-Signature",
			Secret:          cfg.YellowCard.WebhookSecret,
			ReferenceField:  "transaction_id",
			Events: map[string]Outcome{
				"transaction.completed": OutcomeCompleted,
				"transaction.failed":    OutcomeFailed,
				"kyc.verified":          OutcomeKYCVerified,
				"kyc.rejected":          OutcomeKYCRejected,
			},
		},
		{
			Provider:        config.ProviderCashramp,
			SignatureHeader: "X-Cashramp-Signature",
			Secret:          cfg.Cashramp.WebhookSecret,
			ReferenceField:  "order_id",
			Events: map[string]Outcome{
				"order.completed": OutcomeCompleted,
				"order.failed":    OutcomeFailed,
				"order.cancelled": OutcomeCancelled,
			},
		},
		{
			Provider:        config.ProviderBitmama,
			SignatureHeader: "X-Bitmama-Signature",
			Secret:          cfg.Bitmama.WebhookSecret,
			ReferenceField:  "transaction_id",
			Events: map[string]Outcome{
				"transaction.completed": OutcomeCompleted,
				"transaction.failed":    OutcomeFailed,
				"transaction.cancelled": OutcomeCancelled,
			},
		},
	}
}

// Sign returns hex(HMAC-SHA256(secret, payload)).
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches payload under secret. An empty
// secret never verifies.
func Verify(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected, err := hex.DecodeString(Sign(secret, payload))
	if err != nil {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}
