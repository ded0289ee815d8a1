package auth

import "context"

type contextKey string

// ContextKeyWalletAddress holds the authenticated wallet address.
const ContextKeyWalletAddress contextKey = "wallet_address"

// WithWalletAddress adds the wallet address to the context.
func WithWalletAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ContextKeyWalletAddress, address)
}

// WalletAddressFromContext retrieves the wallet address from the context.
func WalletAddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ContextKeyWalletAddress).(string)
	return addr, ok && addr != ""
}
