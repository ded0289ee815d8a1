package auth

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newWallet(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return key, crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func sign(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()
	sig, err := crypto.Sign(personalHash(message), key)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

func TestVerifyWalletSignature(t *testing.T) {
	key, address := newWallet(t)
	_, other := newWallet(t)
	msg := SigningMessage("abc")
	sig := sign(t, key, msg)

	if err := VerifyWalletSignature(address, msg, sig); err != nil {
		t.Fatalf("expected valid signature: %v", err)
	}
	if err := VerifyWalletSignature(strings.ToLower(address), msg, sig); err != nil {
		t.Fatalf("lowercase address should verify: %v", err)
	}
	if err := VerifyWalletSignature(other, msg, sig); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
	if err := VerifyWalletSignature(address, msg+"x", sig); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("tampered message should not verify, got %v", err)
	}
	if err := VerifyWalletSignature(address, msg, "0x1234"); err == nil {
		t.Fatalf("short signature should fail")
	}
	if err := VerifyWalletSignature("not-an-address", msg, sig); err == nil {
		t.Fatalf("malformed address should fail")
	}
}

func TestNonceFromMessage(t *testing.T) {
	nonce, ok := NonceFromMessage(SigningMessage("5f1c"))
	if !ok || nonce != "5f1c" {
		t.Fatalf("unexpected nonce %q (%v)", nonce, ok)
	}
	if _, ok := NonceFromMessage("hello"); ok {
		t.Fatalf("message without nonce should not parse")
	}
}

func TestNonceStore_SingleUseAndExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := NewNonceStore(5 * time.Minute)
	s.now = func() time.Time { return now }

	c := s.Issue("0xAbC0000000000000000000000000000000000001")
	if c.ExpiresIn != 300_000 || !strings.HasSuffix(c.Message, "Nonce: "+c.Nonce) {
		t.Fatalf("unexpected challenge %+v", c)
	}

	if err := s.Consume("0xabc0000000000000000000000000000000000001", c.Nonce); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if err := s.Consume("0xabc0000000000000000000000000000000000001", c.Nonce); !errors.Is(err, ErrNonceNotFound) {
		t.Fatalf("second consume should fail, got %v", err)
	}

	c = s.Issue("0xabc0000000000000000000000000000000000001")
	now = now.Add(6 * time.Minute)
	if err := s.Consume("0xabc0000000000000000000000000000000000001", c.Nonce); !errors.Is(err, ErrNonceExpired) {
		t.Fatalf("expected ErrNonceExpired, got %v", err)
	}
}

func TestTokenIssuer(t *testing.T) {
	_, address := newWallet(t)
	ti, err := NewTokenIssuer("0123456789abcdef0123456789abcdef", "jahpay", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	token, exp, err := ti.Issue(strings.ToLower(address))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if exp.Before(time.Now()) {
		t.Fatalf("expiry in the past")
	}
	got, err := ti.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != address {
		t.Fatalf("expected checksummed %s, got %s", address, got)
	}

	other, _ := NewTokenIssuer("another-secret-another-secret-xx", "jahpay", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("token from another secret should fail, got %v", err)
	}

	ti.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := ti.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token should fail, got %v", err)
	}
}

func TestRequireWallet(t *testing.T) {
	_, address := newWallet(t)
	ti, _ := NewTokenIssuer("", "jahpay", time.Hour)
	token, _, _ := ti.Issue(address)

	handler := RequireWallet(ti)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, _ := WalletAddressFromContext(r.Context())
		_, _ = w.Write([]byte(addr))
	}))

	tests := []struct {
		name     string
		header   map[string]string
		wantCode int
		wantBody string
	}{
		{name: "bearer token", header: map[string]string{"Authorization": "Bearer " + token}, wantCode: http.StatusOK, wantBody: address},
		{name: "wallet header", header: map[string]string{HeaderWalletAddress: strings.ToLower(address)}, wantCode: http.StatusOK, wantBody: address},
		{name: "missing credential", wantCode: http.StatusUnauthorized},
		{name: "malformed header", header: map[string]string{HeaderWalletAddress: "0x123"}, wantCode: http.StatusBadRequest},
		{name: "bad token", header: map[string]string{"Authorization": "Bearer nope", HeaderWalletAddress: address}, wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d (%s)", tt.wantCode, rec.Code, rec.Body.String())
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Fatalf("expected %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHTTP_NonceThenVerify(t *testing.T) {
	key, address := newWallet(t)
	ti, _ := NewTokenIssuer("", "jahpay", time.Hour)
	r := chi.NewRouter()
	RegisterRoutes(r, NewNonceStore(time.Minute), ti, false, zap.NewNop())

	post := func(path string, body any) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := post("/auth/nonce", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without address, got %d", rec.Code)
	}

	rec = post("/auth/nonce", map[string]string{"address": address})
	if rec.Code != http.StatusOK {
		t.Fatalf("nonce: expected 200, got %d", rec.Code)
	}
	var challenge Challenge
	if err := json.Unmarshal(rec.Body.Bytes(), &challenge); err != nil {
		t.Fatalf("decode challenge: %v", err)
	}

	rec = post("/auth/verify", map[string]string{"address": address, "message": challenge.Message})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without signature, got %d", rec.Code)
	}

	_, stranger := newWallet(t)
	rec = post("/auth/verify", map[string]string{
		"address":   stranger,
		"message":   challenge.Message,
		"signature": sign(t, key, challenge.Message),
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a foreign signature, got %d", rec.Code)
	}

	body := map[string]string{
		"address":   address,
		"message":   challenge.Message,
		"signature": sign(t, key, challenge.Message),
	}
	rec = post("/auth/verify", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var session Session
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if !session.Success || session.Address != address {
		t.Fatalf("unexpected session %+v", session)
	}
	if got, err := ti.Validate(session.Token); err != nil || got != address {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if c := rec.Result().Cookies(); len(c) != 1 || c[0].Name != CookieName || !c[0].HttpOnly {
		t.Fatalf("expected an httpOnly session cookie, got %+v", c)
	}

	rec = post("/auth/verify", body)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("replayed nonce should be rejected, got %d", rec.Code)
	}
}
