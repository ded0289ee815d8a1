package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	apphttp "github.com/jahpay/ramp-aggregator/pkg/app/http"
)

const (
	// HeaderWalletAddress carries the caller's wallet when no token is sent.
	HeaderWalletAddress = "X-Wallet-Address"
	// CookieName is the session cookie set by /auth/verify.
	CookieName = "auth_token"
)

// RequireWallet resolves the caller's wallet address from a bearer token,
// the session cookie or the X-Wallet-Address header, in that order, and
// stores it in the request context. tokens may be nil to accept only the
// header.
func RequireWallet(tokens *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			address, err := walletFromRequest(r, tokens)
			if err != nil {
				apphttp.DefaultErrorHandler(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithWalletAddress(r.Context(), address)))
		})
	}
}

func walletFromRequest(r *http.Request, tokens *TokenIssuer) (string, error) {
	if token := sessionToken(r); token != "" && tokens != nil {
		address, err := tokens.Validate(token)
		if err != nil {
			return "", apperrors.UnAuthorizedError(err, "invalid session token")
		}
		return address, nil
	}

	address := strings.TrimSpace(r.Header.Get(HeaderWalletAddress))
	if address == "" {
		return "", apperrors.UnAuthorizedError(nil, "Unauthorized: No wallet address")
	}
	if !ValidateEVMAddress(address) {
		return "", apperrors.BadRequestError(nil, "invalid wallet address")
	}
	return NormalizeAddress(address), nil
}

func sessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}
