package xrplsale

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// signaturePrefix is the optional scheme prefix on signature header values.
const signaturePrefix = "sha256="

// WebhookSignatureValidator verifies HMAC-SHA256 signatures on inbound
// webhook payloads. It is independent of the request pipeline; construct one
// via Client.WebhookValidator or NewWebhookSignatureValidator.
type WebhookSignatureValidator struct {
	secret []byte
}

// NewWebhookSignatureValidator creates a validator for the given shared
// secret.
func NewWebhookSignatureValidator(secret string) *WebhookSignatureValidator {
	return &WebhookSignatureValidator{secret: []byte(secret)}
}

// Valid reports whether signature is the authentic HMAC-SHA256 of payload.
// The signature is hex-encoded and may carry a "sha256=" prefix. Comparison
// is constant-time.
func (v *WebhookSignatureValidator) Valid(payload []byte, signature string) bool {
	provided, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)

	return hmac.Equal(mac.Sum(nil), provided)
}

// Sign computes the signature header value for payload. Useful for test
// harnesses and for signing outbound requests symmetrically.
func (v *WebhookSignatureValidator) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)

	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifyAndParse validates the signature and decodes the payload into a
// WebhookEvent. It returns ErrInvalidSignature when verification fails.
func (v *WebhookSignatureValidator) VerifyAndParse(payload []byte, signature string) (*WebhookEvent, error) {
	if !v.Valid(payload, signature) {
		return nil, ErrInvalidSignature
	}

	var event WebhookEvent

	err := json.Unmarshal(payload, &event)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return &event, nil
}
