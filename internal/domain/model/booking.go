package model

import (
	"database/sql/driver"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Scan implements sql.Scanner interface
func (s *BookingStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = BookingStatus(v)
	case []byte:
		*s = BookingStatus(v)
	default:
		*s = BookingStatusPending
	}
	return nil
}

// Value implements driver.Valuer interface
func (s BookingStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Booking represents a reservation of a hall for an inclusive date range.
// Start and end dates are calendar dates; the day count is inclusive, so a
// single-day booking has start == end.
type Booking struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	HallID        int64           `gorm:"not null;index" json:"hall_id"`
	CustomerName  string          `gorm:"not null;size:120" json:"customer_name"`
	CustomerEmail string          `gorm:"not null;size:254" json:"customer_email"`
	StartDate     time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time       `gorm:"type:date;not null" json:"end_date"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status        BookingStatus   `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time       `gorm:"default:now()" json:"created_at"`

	// Relations
	Hall *Hall `gorm:"foreignKey:HallID" json:"hall,omitempty"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
