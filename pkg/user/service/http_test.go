package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	"github.com/jahpay/ramp-aggregator/pkg/auth"
	"github.com/jahpay/ramp-aggregator/pkg/user"
	"github.com/jahpay/ramp-aggregator/pkg/user/service/mocks"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newBankAccountTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, nil, zap.NewNop())
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestBankAccountsHTTP_NoWallet_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newBankAccountTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/user/bank-accounts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "Unauthorized: No wallet address" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}

func TestBankAccountsHTTP_List(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ListBankAccounts(mock.Anything, testWallet).
		Return(&user.BankAccountList{
			Accounts: []*user.BankAccount{{ID: "a-1", AccountNumber: "0123456789", IsDefault: true}},
			Total:    1,
		}, nil)
	handler := newBankAccountTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/user/bank-accounts", nil)
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got struct {
		Accounts []map[string]any `json:"accounts"`
		Total    int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Total != 1 || got.Accounts[0]["id"] != "a-1" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if _, leaked := got.Accounts[0]["wallet_address"]; leaked {
		t.Fatal("wallet address must not be serialized")
	}
}

func TestBankAccountsHTTP_Add_MissingField_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newBankAccountTestServer(svc)

	body := `{"account_number":"0123456789","bank_code":"044","country_code":"NG"}`
	req := httptest.NewRequest(http.MethodPost, "/user/bank-accounts", bytes.NewBufferString(body))
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "invalid account_name: failed required" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}

func TestBankAccountsHTTP_Add_Created(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		AddBankAccount(mock.Anything, testWallet, mock.MatchedBy(func(r *user.AddBankAccountRequest) bool {
			return r.AccountNumber == "0123456789" && r.BankCode == "044"
		})).
		Return(&user.BankAccount{ID: "a-1", AccountNumber: "0123456789", IsDefault: true}, nil)
	handler := newBankAccountTestServer(svc)

	body := `{"account_number":"0123456789","bank_code":"044","account_name":"Ada Obi","country_code":"NG"}`
	req := httptest.NewRequest(http.MethodPost, "/user/bank-accounts", bytes.NewBufferString(body))
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestBankAccountsHTTP_Add_Conflict(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().AddBankAccount(mock.Anything, testWallet, mock.Anything).
		Return(nil, apperrors.ConflictError(nil, "Bank account already added"))
	handler := newBankAccountTestServer(svc)

	body := `{"account_number":"0123456789","bank_code":"044","account_name":"Ada Obi","country_code":"NG"}`
	req := httptest.NewRequest(http.MethodPost, "/user/bank-accounts", bytes.NewBufferString(body))
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestProfileHTTP_Get(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetProfile(mock.Anything, testWallet).
		Return(&user.Profile{
			ID:                "p-1",
			WalletAddress:     testWallet,
			CountryCode:       "NG",
			PreferredProvider: "yellowcard",
			KYCStatus:         user.KYCVerified,
			KYCDocumentType:   "passport",
		}, nil)
	handler := newBankAccountTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got["id"] != "p-1" || got["wallet_address"] != testWallet || got["kyc_status"] != "verified" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if got["preferred_provider"] != "yellowcard" || got["country_code"] != "NG" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProfileHTTP_Put_IgnoresUnlistedFields(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		UpdateProfile(mock.Anything, testWallet, mock.MatchedBy(func(r *user.UpdateProfileRequest) bool {
			return r.CountryCode != nil && *r.CountryCode == "GH" && r.PreferredProvider == nil
		})).
		Return(&user.UpdateProfileResponse{
			Success: true,
			Updates: map[string]string{"country_code": "GH"},
			Profile: &user.Profile{ID: "p-1", CountryCode: "GH", KYCStatus: user.KYCUnverified},
		}, nil)
	handler := newBankAccountTestServer(svc)

	body := `{"country_code":"GH","kyc_status":"verified","id":"forged"}`
	req := httptest.NewRequest(http.MethodPut, "/user/profile", bytes.NewBufferString(body))
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got struct {
		Success bool              `json:"success"`
		Updates map[string]string `json:"updates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Success || len(got.Updates) != 1 || got.Updates["country_code"] != "GH" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProfileHTTP_Put_InvalidCountry_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newBankAccountTestServer(svc)

	req := httptest.NewRequest(http.MethodPut, "/user/profile", bytes.NewBufferString(`{"country_code":"NGA"}`))
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "invalid country_code: failed len" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}

func TestProfileHTTP_NoWallet_ReturnsUnauthorized(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newBankAccountTestServer(svc)

	for _, path := range []string{"/user/profile", "/user/kyc-status"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusUnauthorized, rec.Code)
		}
	}
}

func TestKYCStatusHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetKYCStatus(mock.Anything, testWallet).
		Return(&user.KYCStatusResponse{
			Status:            user.KYCVerified,
			DocumentType:      "national_id",
			TransactionLimits: &user.TransactionLimits{Daily: 10000000, Monthly: 100000000},
		}, nil)
	handler := newBankAccountTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/user/kyc-status", nil)
	req.Header.Set(auth.HeaderWalletAddress, testWallet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got struct {
		Status            string `json:"status"`
		DocumentType      string `json:"document_type"`
		TransactionLimits struct {
			Daily   int64 `json:"daily"`
			Monthly int64 `json:"monthly"`
		} `json:"transaction_limits"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Status != "verified" || got.DocumentType != "national_id" || got.TransactionLimits.Daily != 10000000 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBanksHTTP_IsPublic(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().SupportedBanks(mock.Anything, "NG").
		Return(&user.BankList{Country: "NG", Banks: user.BanksByCountry("NG"), Source: user.SourceStatic}, nil)
	handler := newBankAccountTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/banks?country=NG", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got user.BankList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Source != user.SourceStatic || len(got.Banks) != 21 || got.Banks[0].Code != "011" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBanksHTTP_MissingCountry_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newBankAccountTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/banks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "country is required" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}
