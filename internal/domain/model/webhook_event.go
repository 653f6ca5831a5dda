package model

import (
	"database/sql/driver"
	"time"
)

// WebhookStatus represents the processing outcome of an inbound provider event
type WebhookStatus string

const (
	WebhookStatusReceived  WebhookStatus = "received"
	WebhookStatusProcessed WebhookStatus = "processed"
	WebhookStatusIgnored   WebhookStatus = "ignored"
	WebhookStatusFailed    WebhookStatus = "failed"
)

// Scan implements sql.Scanner interface
func (w *WebhookStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*w = WebhookStatus(v)
	case []byte:
		*w = WebhookStatus(v)
	default:
		*w = WebhookStatusReceived
	}
	return nil
}

// Value implements driver.Valuer interface
func (w WebhookStatus) Value() (driver.Value, error) {
	return string(w), nil
}

// WebhookEvent is the audit record for every provider-initiated finalization
// attempt: webhook deliveries and client-invoked captures. Processing failures
// are stored here while the HTTP response to the provider stays 200, so
// operators can see what was dropped without triggering retry storms.
type WebhookEvent struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Provider    PaymentProvider `gorm:"size:20;not null;index" json:"provider"`
	EventType   string          `gorm:"size:100" json:"event_type"`
	Reference   string          `gorm:"size:120;index" json:"reference"`
	Status      WebhookStatus   `gorm:"size:20;not null;default:'received'" json:"status"`
	Error       *string         `json:"error,omitempty"`
	Payload     JSONB           `gorm:"type:jsonb" json:"payload,omitempty"`
	CreatedAt   time.Time       `gorm:"default:now()" json:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

// TableName specifies the table name for GORM
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
