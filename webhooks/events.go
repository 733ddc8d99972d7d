package webhooks

import (
	"encoding/json"
	"fmt"
)

// EventData carries the event-specific fields of a webhook payload. Fields
// not relevant to the event type are left zero.
type EventData struct {
	EmailID       string `json:"emailId,omitempty"`
	ToAddress     string `json:"toAddress,omitempty"`
	FromAddress   string `json:"fromAddress,omitempty"`
	Subject       string `json:"subject,omitempty"`
	BounceType    string `json:"bounceType,omitempty"`
	ComplaintType string `json:"complaintType,omitempty"`
	OpenedAt      string `json:"openedAt,omitempty"`
	ClickedAt     string `json:"clickedAt,omitempty"`
	LinkURL       string `json:"linkUrl,omitempty"`
	LinkIndex     int    `json:"linkIndex,omitempty"`
}

// Event is a typed webhook payload.
type Event struct {
	Event     string    `json:"event"`
	Timestamp string    `json:"timestamp,omitempty"`
	Data      EventData `json:"data"`
}

// ParseEvent decodes a verified webhook payload into an Event. Call it with
// the raw body only after Verify has accepted the delivery.
func ParseEvent(payload []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("webhooks: parse event: %w", err)
	}
	if ev.Event == "" {
		return nil, fmt.Errorf("webhooks: parse event: missing event type")
	}
	return &ev, nil
}
