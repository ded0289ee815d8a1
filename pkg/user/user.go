// Package user holds the bank account, profile and KYC model of a wallet user.
package user

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrInvalidAccountNumber is returned for an account number of the wrong shape.
	ErrInvalidAccountNumber = errors.New("invalid account number")
	// ErrInvalidBankCode is returned for a bank code of the wrong shape.
	ErrInvalidBankCode = errors.New("invalid bank code")
	// ErrAccountNameRequired is returned when the holder name is blank.
	ErrAccountNameRequired = errors.New("account name is required")
)

// CountryNigeria has stricter account rules than the default.
const CountryNigeria = "NG"

var (
	nonDigits  = regexp.MustCompile(`\D`)
	ngBankCode = regexp.MustCompile(`^\d{3}$`)
)

// BankAccount is a payout destination owned by a wallet.
type BankAccount struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"-"`
	AccountNumber string    `json:"account_number"`
	BankCode      string    `json:"bank_code"`
	BankName      string    `json:"bank_name,omitempty"`
	AccountName   string    `json:"account_name"`
	CountryCode   string    `json:"country_code"`
	IsVerified    bool      `json:"is_verified"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddBankAccountRequest is the body of POST /user/bank-accounts.
type AddBankAccountRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	BankCode      string `json:"bank_code" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
	CountryCode   string `json:"country_code" validate:"required,len=2"`
	BankName      string `json:"bank_name"`
}

// BankAccountList is the body of GET /user/bank-accounts.
type BankAccountList struct {
	Accounts []*BankAccount `json:"accounts"`
	Total    int            `json:"total"`
}

// NormalizeAccountNumber strips everything but digits.
func NormalizeAccountNumber(n string) string {
	return nonDigits.ReplaceAllString(n, "")
}

// ValidateAccountNumber checks n for country: ten digits in Nigeria, eight to
// twenty digits elsewhere. Non-digit separators are ignored.
func ValidateAccountNumber(n, country string) error {
	digits := len(NormalizeAccountNumber(n))
	if strings.EqualFold(country, CountryNigeria) {
		if digits != 10 {
			return ErrInvalidAccountNumber
		}
		return nil
	}
	if digits < 8 || digits > 20 {
		return ErrInvalidAccountNumber
	}
	return nil
}

// ValidateBankCode checks code for country: three digits in Nigeria, any
// non-blank value elsewhere.
func ValidateBankCode(code, country string) error {
	code = strings.TrimSpace(code)
	if strings.EqualFold(country, CountryNigeria) {
		if !ngBankCode.MatchString(code) {
			return ErrInvalidBankCode
		}
		return nil
	}
	if code == "" {
		return ErrInvalidBankCode
	}
	return nil
}

// Validate checks the request fields against the country rules.
func (r *AddBankAccountRequest) Validate() error {
	if err := ValidateAccountNumber(r.AccountNumber, r.CountryCode); err != nil {
		return err
	}
	if err := ValidateBankCode(r.BankCode, r.CountryCode); err != nil {
		return err
	}
	if strings.TrimSpace(r.AccountName) == "" {
		return ErrAccountNameRequired
	}
	return nil
}
