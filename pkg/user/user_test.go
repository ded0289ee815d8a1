package user

import (
	"errors"
	"testing"
)

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		number  string
		country string
		wantErr bool
	}{
		{"0123456789", "NG", false},
		{"0123-456-789", "ng", false},
		{"012345678", "NG", true},
		{"01234567890", "NG", true},
		{"12345678", "GH", false},
		{"12345678901234567890", "KE", false},
		{"1234567", "GH", true},
		{"123456789012345678901", "GH", true},
	}
	for _, tt := range tests {
		err := ValidateAccountNumber(tt.number, tt.country)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s/%s: expected error=%v, got %v", tt.number, tt.country, tt.wantErr, err)
		}
	}
}

func TestValidateBankCode(t *testing.T) {
	if err := ValidateBankCode("044", "NG"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateBankCode("44", "NG"); !errors.Is(err, ErrInvalidBankCode) {
		t.Fatalf("expected ErrInvalidBankCode, got %v", err)
	}
	if err := ValidateBankCode("GH-ABSA", "GH"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateBankCode("  ", "GH"); !errors.Is(err, ErrInvalidBankCode) {
		t.Fatalf("expected ErrInvalidBankCode, got %v", err)
	}
}

func TestAddBankAccountRequest_Validate(t *testing.T) {
	req := &AddBankAccountRequest{AccountNumber: "0123456789", BankCode: "044", CountryCode: "NG"}
	if err := req.Validate(); !errors.Is(err, ErrAccountNameRequired) {
		t.Fatalf("expected ErrAccountNameRequired, got %v", err)
	}
	req.AccountName = "Ada Obi"
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
