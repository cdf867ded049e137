package restorekey

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

// Signer derives restore keys from cart tokens. Keys are never persisted;
// leaking the record store therefore exposes nothing a token alone does not,
// and rotating the secret invalidates every outstanding link at once.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Key returns the lowercase-hex HMAC-SHA256 of the token.
func (s *Signer) Key(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time. An empty token or key never verifies.
func (s *Signer) Verify(token, key string) bool {
	if token == "" || key == "" {
		return false
	}
	return hmac.Equal([]byte(s.Key(token)), []byte(key))
}

// Link builds the restore URL embedded in recovery emails.
func (s *Signer) Link(baseURL, token string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("key", s.Key(token))
	return baseURL + "/restore?" + q.Encode()
}
