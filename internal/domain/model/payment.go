package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProvider identifies the external processor a payment went through
type PaymentProvider string

const (
	PaymentProviderPayPal   PaymentProvider = "paypal"
	PaymentProviderStripe   PaymentProvider = "stripe"
	PaymentProviderPaystack PaymentProvider = "paystack"
)

// PaymentStatus represents the status of a payment attempt
type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Scan implements sql.Scanner interface
func (s *PaymentStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		*s = PaymentStatusInitiated
	}
	return nil
}

// Value implements driver.Valuer interface
func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Payment records a single payment attempt tied one-to-one to a booking.
// Re-initiating payment for the same booking overwrites this row rather than
// creating a second one.
type Payment struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID   int64           `gorm:"not null;uniqueIndex" json:"booking_id"`
	Provider    PaymentProvider `gorm:"size:20;not null" json:"provider"`
	ProviderRef string          `gorm:"size:120" json:"provider_ref"`
	Status      PaymentStatus   `gorm:"size:20;not null;default:'initiated'" json:"status"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	RawResponse JSONB           `gorm:"type:jsonb" json:"raw_response,omitempty"`
	CreatedAt   time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"default:now()" json:"updated_at"`

	// Relations
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// JSONB represents a JSONB database type
type JSONB map[string]interface{}

// Value implements driver.Valuer interface
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONB) Scan(src interface{}) error {
	if src == nil {
		*j = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		*j = make(JSONB)
		return nil
	}
}
