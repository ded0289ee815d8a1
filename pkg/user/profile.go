package user

import (
	"strings"
	"time"
)

// KYCStatus is the identity verification state of a wallet user.
type KYCStatus string

const (
	KYCUnverified KYCStatus = "unverified"
	KYCPending    KYCStatus = "pending"
	KYCVerified   KYCStatus = "verified"
	KYCRejected   KYCStatus = "rejected"
)

// Profile holds the per-wallet preferences and KYC state.
type Profile struct {
	ID                string     `json:"id"`
	WalletAddress     string     `json:"wallet_address"`
	CountryCode       string     `json:"country_code,omitempty"`
	PreferredProvider string     `json:"preferred_provider,omitempty"`
	KYCStatus         KYCStatus  `json:"kyc_status"`
	KYCVerifiedAt     *time.Time `json:"-"`
	KYCDocumentType   string     `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// UpdateProfileRequest is the body of PUT /user/profile. Only these fields
// can be changed; anything else in the body is ignored.
type UpdateProfileRequest struct {
	CountryCode       *string `json:"country_code" validate:"omitempty,len=2,alpha"`
	PreferredProvider *string `json:"preferred_provider"`
}

// UpdateProfileResponse echoes the accepted fields and the stored profile.
type UpdateProfileResponse struct {
	Success bool              `json:"success"`
	Updates map[string]string `json:"updates"`
	Profile *Profile          `json:"profile"`
}

// Apply copies the requested fields onto p and returns what changed, keyed
// by JSON field name. An empty preferred provider clears the preference.
func (r *UpdateProfileRequest) Apply(p *Profile) map[string]string {
	updates := make(map[string]string)
	if r.CountryCode != nil {
		p.CountryCode = strings.ToUpper(strings.TrimSpace(*r.CountryCode))
		updates["country_code"] = p.CountryCode
	}
	if r.PreferredProvider != nil {
		p.PreferredProvider = strings.ToLower(strings.TrimSpace(*r.PreferredProvider))
		updates["preferred_provider"] = p.PreferredProvider
	}
	return updates
}

// TransactionLimits caps the fiat volume of a verified user.
type TransactionLimits struct {
	Daily   int64 `json:"daily"`
	Monthly int64 `json:"monthly"`
}

// KYCStatusResponse is the body of GET /user/kyc-status. Limits are only
// reported once the user is verified.
type KYCStatusResponse struct {
	Status            KYCStatus          `json:"status"`
	VerifiedAt        *time.Time         `json:"verified_at,omitempty"`
	DocumentType      string             `json:"document_type,omitempty"`
	TransactionLimits *TransactionLimits `json:"transaction_limits,omitempty"`
}
