package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNonceNotFound is returned when no nonce was issued for the address.
	ErrNonceNotFound = errors.New("nonce not found")
	// ErrNonceExpired is returned when the nonce outlived its TTL.
	ErrNonceExpired = errors.New("nonce expired")
)

const messageNoncePrefix = "Nonce: "

// SigningMessage is the text a wallet signs to prove ownership.
func SigningMessage(nonce string) string {
	return "Welcome to jahpay!\n\nSign this message to prove you own this wallet.\n\n" + messageNoncePrefix + nonce
}

// NonceFromMessage extracts the nonce from a signed message.
func NonceFromMessage(message string) (string, bool) {
	i := strings.LastIndex(message, messageNoncePrefix)
	if i < 0 {
		return "", false
	}
	nonce := strings.TrimSpace(message[i+len(messageNoncePrefix):])
	return nonce, nonce != ""
}

// Challenge is a freshly issued nonce with its message.
type Challenge struct {
	Nonce     string `json:"nonce"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	ExpiresIn int64  `json:"expires_in"`
}

type nonceEntry struct {
	nonce     string
	expiresAt time.Time
}

// NonceStore hands out single-use nonces per wallet address.
type NonceStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]nonceEntry
}

// NewNonceStore creates a store whose nonces live for ttl.
func NewNonceStore(ttl time.Duration) *NonceStore {
	return &NonceStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]nonceEntry),
	}
}

// Issue creates a nonce for address, replacing any earlier one, and drops
// expired entries.
func (s *NonceStore) Issue(address string) Challenge {
	now := s.now()
	nonce := uuid.NewString()

	s.mu.Lock()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[strings.ToLower(address)] = nonceEntry{nonce: nonce, expiresAt: now.Add(s.ttl)}
	s.mu.Unlock()

	return Challenge{
		Nonce:     nonce,
		Message:   SigningMessage(nonce),
		Timestamp: now.UnixMilli(),
		ExpiresIn: s.ttl.Milliseconds(),
	}
}

// Consume checks nonce against the one issued for address and invalidates it.
func (s *NonceStore) Consume(address, nonce string) error {
	key := strings.ToLower(address)

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || e.nonce != nonce {
		return fmt.Errorf("%w for %s", ErrNonceNotFound, address)
	}
	delete(s.entries, key)
	if s.now().After(e.expiresAt) {
		return ErrNonceExpired
	}
	return nil
}
