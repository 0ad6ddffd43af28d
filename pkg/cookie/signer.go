package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

const minSecretLength = 32

// Signer signs and verifies cookie values with a rotating list of secrets.
// The first secret signs all new values; every secret is tried during
// verification, so old cookies stay valid while keys rotate.
type Signer struct {
	secrets  []string
	defaults Options
}

// NewSigner validates the secret list and returns a Signer. Secrets must be
// ordered newest first and be at least 32 characters long.
func NewSigner(secrets []string, opts ...Option) (*Signer, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)

	return &Signer{
		secrets:  secrets,
		defaults: defaults,
	}, nil
}

// Jar returns an empty outbound cookie jar bound to this signer. One jar is
// meant to live for one request/response cycle.
func (s *Signer) Jar() *Jar {
	return &Jar{signer: s}
}

// Verify checks a raw signed value and returns the embedded plaintext.
func (s *Signer) Verify(signed string) (string, error) {
	parts := strings.SplitN(signed, "|", 2)
	if len(parts) != 2 {
		return "", ErrInvalidFormat
	}

	encodedValue, signature := parts[0], parts[1]

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Try all secrets to support key rotation - old cookies remain valid during transition
	for _, secret := range s.secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expectedSig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		// Use constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(signature), []byte(expectedSig)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

// GetSigned reads the named cookie from the request and verifies its
// signature. Missing cookies yield ErrCookieNotFound; tampered ones yield
// ErrInvalidSignature.
func (s *Signer) GetSigned(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}

	return s.Verify(c.Value)
}

func (s *Signer) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(s.secrets[0]))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}
