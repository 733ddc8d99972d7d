package webhooks

import (
	"fmt"
	"strconv"
	"testing"
	"time"
)

func TestVerifyValidSignature(t *testing.T) {
	payload := []byte(`{"event":"email.delivered","data":{"emailId":"em_123"}}`)
	secret := "whsec_test"
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := ComputeSignature(payload, ts, secret)

	result := Verify(payload, sig, ts, secret)
	if !result.Valid {
		t.Fatalf("expected valid, got reason %q", result.Reason)
	}
	if result.Payload["event"] != "email.delivered" {
		t.Errorf("payload event = %v, want email.delivered", result.Payload["event"])
	}
	data, ok := result.Payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("payload data missing or wrong type: %v", result.Payload["data"])
	}
	if data["emailId"] != "em_123" {
		t.Errorf("emailId = %v, want em_123", data["emailId"])
	}
}

func TestVerifyRejections(t *testing.T) {
	payload := []byte(`{"event":"email.bounced"}`)
	secret := "whsec_test"
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := ComputeSignature(payload, ts, secret)

	tests := []struct {
		name       string
		payload    []byte
		signature  string
		timestamp  string
		secret     string
		wantReason string
	}{
		{
			name:       "tampered payload",
			payload:    []byte(`{"event":"email.delivered"}`),
			signature:  sig,
			timestamp:  ts,
			secret:     secret,
			wantReason: "invalid signature",
		},
		{
			name:       "wrong signature",
			payload:    payload,
			signature:  "deadbeef",
			timestamp:  ts,
			secret:     secret,
			wantReason: "invalid signature",
		},
		{
			name:       "wrong secret",
			payload:    payload,
			signature:  sig,
			timestamp:  ts,
			secret:     "whsec_other",
			wantReason: "invalid signature",
		},
		{
			name:       "unparsable timestamp",
			payload:    payload,
			signature:  sig,
			timestamp:  "not-a-number",
			secret:     secret,
			wantReason: "invalid timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Verify(tt.payload, tt.signature, tt.timestamp, tt.secret)
			if result.Valid {
				t.Fatal("expected verification to fail")
			}
			if result.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", result.Reason, tt.wantReason)
			}
			if result.Payload != nil {
				t.Error("failed verification must not expose the payload")
			}
		})
	}
}

func TestVerifyExpiredTimestamp(t *testing.T) {
	payload := []byte(`{"event":"webhook.test"}`)
	secret := "whsec_test"
	ts := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
	// Signature is correct for the old timestamp; the window check must
	// still reject it.
	sig := ComputeSignature(payload, ts, secret)

	result := Verify(payload, sig, ts, secret)
	if result.Valid {
		t.Fatal("expected expired timestamp to fail")
	}
	if result.Reason != "timestamp too old" {
		t.Errorf("reason = %q, want %q", result.Reason, "timestamp too old")
	}
}

func TestVerifyFutureTimestamp(t *testing.T) {
	payload := []byte(`{"event":"webhook.test"}`)
	secret := "whsec_test"
	ts := strconv.FormatInt(time.Now().Add(10*time.Minute).Unix(), 10)
	sig := ComputeSignature(payload, ts, secret)

	result := Verify(payload, sig, ts, secret)
	if result.Valid {
		t.Fatal("expected future timestamp to fail")
	}
}

func TestVerifyWithMaxAge(t *testing.T) {
	payload := []byte(`{"event":"webhook.test"}`)
	secret := "whsec_test"
	ts := strconv.FormatInt(time.Now().Add(-2*time.Minute).Unix(), 10)
	sig := ComputeSignature(payload, ts, secret)

	if result := Verify(payload, sig, ts, secret, WithMaxAge(time.Minute)); result.Valid {
		t.Error("expected 2-minute-old delivery to fail a 1-minute window")
	}
	if result := Verify(payload, sig, ts, secret, WithMaxAge(10*time.Minute)); !result.Valid {
		t.Errorf("expected 2-minute-old delivery to pass a 10-minute window, got %q", result.Reason)
	}
}

func TestVerifyInvalidJSON(t *testing.T) {
	payload := []byte(`not json at all`)
	secret := "whsec_test"
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := ComputeSignature(payload, ts, secret)

	result := Verify(payload, sig, ts, secret)
	if result.Valid {
		t.Fatal("expected invalid JSON to fail")
	}
	if result.Reason != "invalid JSON payload" {
		t.Errorf("reason = %q, want %q", result.Reason, "invalid JSON payload")
	}
}

func TestVerifyInbound(t *testing.T) {
	payload := []byte(`{"event":"email.received","data":{"from":"a@example.com","subject":"Hi"}}`)
	secret := "whsec_inbound"
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := ComputeSignature(payload, ts, secret)

	result := VerifyInbound(payload, sig, ts, secret)
	if !result.Valid {
		t.Fatalf("expected valid, got reason %q", result.Reason)
	}
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{
		"event": "email.clicked",
		"timestamp": "2026-02-10T12:00:00Z",
		"data": {
			"emailId": "em_456",
			"toAddress": "user@example.com",
			"clickedAt": "2026-02-10T12:00:00Z",
			"linkUrl": "https://example.com/pricing",
			"linkIndex": 2
		}
	}`)

	ev, err := ParseEvent(payload)
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	if ev.Event != EventClicked {
		t.Errorf("event = %q, want %q", ev.Event, EventClicked)
	}
	if ev.Data.EmailID != "em_456" {
		t.Errorf("emailId = %q, want em_456", ev.Data.EmailID)
	}
	if ev.Data.LinkURL != "https://example.com/pricing" {
		t.Errorf("linkUrl = %q", ev.Data.LinkURL)
	}
	if ev.Data.LinkIndex != 2 {
		t.Errorf("linkIndex = %d, want 2", ev.Data.LinkIndex)
	}
}

func TestParseEventErrors(t *testing.T) {
	if _, err := ParseEvent([]byte(`{`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := ParseEvent([]byte(`{"data":{}}`)); err == nil {
		t.Error("expected error for missing event type")
	}
}

func TestComputeSignatureDeterministic(t *testing.T) {
	payload := []byte(`{"a":1}`)
	a := ComputeSignature(payload, "1700000000", "secret")
	b := ComputeSignature(payload, "1700000000", "secret")
	if a != b {
		t.Error("signature not deterministic")
	}
	if a == ComputeSignature(payload, "1700000001", "secret") {
		t.Error("timestamp must be part of the signed message")
	}
	if a == fmt.Sprintf("%x", payload) {
		t.Error("signature must not be a plain digest of the payload")
	}
}
