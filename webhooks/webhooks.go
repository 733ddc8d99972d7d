// Package webhooks verifies SendPigeon webhook signatures.
//
// Verification is pure computation: no network calls, no shared state, safe
// for concurrent use. The service signs each delivery with
// HMAC-SHA256(secret, timestamp + "." + body) and sends the hex signature
// and the unix timestamp as headers; the header names are chosen by the
// receiving application, not fixed here.
package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"
)

// DefaultMaxAge is the default replay window for webhook timestamps.
const DefaultMaxAge = 5 * time.Minute

// Event types delivered by SendPigeon webhooks.
const (
	EventDelivered  = "email.delivered"
	EventBounced    = "email.bounced"
	EventComplained = "email.complained"
	EventOpened     = "email.opened"
	EventClicked    = "email.clicked"
	EventTest       = "webhook.test"
)

// VerificationResult is the outcome of signature verification. Payload is
// populated only when Valid is true; Reason only when it is false.
type VerificationResult struct {
	Valid   bool
	Payload map[string]any
	Reason  string
}

type verifyConfig struct {
	maxAge time.Duration
}

// Option configures verification.
type Option func(*verifyConfig)

// WithMaxAge sets the replay window. Timestamps further than maxAge from
// the current time are rejected even when the signature is correct.
// Default: 5 minutes.
func WithMaxAge(maxAge time.Duration) Option {
	return func(c *verifyConfig) {
		c.maxAge = maxAge
	}
}

// Verify checks a webhook delivery against the signing secret. payload is
// the raw request body, signature and timestamp are the values of the
// signature and timestamp headers.
func Verify(payload []byte, signature, timestamp, secret string, opts ...Option) VerificationResult {
	cfg := &verifyConfig{maxAge: DefaultMaxAge}
	for _, opt := range opts {
		opt(cfg)
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return VerificationResult{Reason: "invalid timestamp"}
	}

	age := time.Now().Unix() - ts
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second > cfg.maxAge {
		return VerificationResult{Reason: "timestamp too old"}
	}

	expected := ComputeSignature(payload, timestamp, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return VerificationResult{Reason: "invalid signature"}
	}

	var parsed map[string]any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return VerificationResult{Reason: "invalid JSON payload"}
	}

	return VerificationResult{Valid: true, Payload: parsed}
}

// VerifyInbound checks an inbound-email webhook delivery. The scheme is the
// same as Verify; inbound webhooks use their own secret.
func VerifyInbound(payload []byte, signature, timestamp, secret string, opts ...Option) VerificationResult {
	return Verify(payload, signature, timestamp, secret, opts...)
}

// ComputeSignature returns the hex HMAC-SHA256 of timestamp + "." + payload
// under secret. Exposed so applications can sign synthetic payloads when
// testing their own webhook handlers.
func ComputeSignature(payload []byte, timestamp, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
