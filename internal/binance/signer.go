package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer computes the request signature for the Binance Futures REST API.
// The secret is kept as []byte so it can be wiped and is never part of
// any printable representation.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the lowercase hex HMAC-SHA256 of the canonical query
// string. It is a pure function of the query and the secret.
func (s *Signer) Sign(query string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// Wipe zeroes the key material.
func (s *Signer) Wipe() {
	if s == nil {
		return
	}
	for i := range s.secret {
		s.secret[i] = 0
	}
}
