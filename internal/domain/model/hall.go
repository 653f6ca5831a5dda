package model

import (
	"github.com/shopspring/decimal"
)

// Hall represents a rentable venue
type Hall struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null;size:120" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Capacity    int             `gorm:"not null;default:0" json:"capacity"`
	PricePerDay decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_day"`
	ImageURL    string          `gorm:"size:200" json:"image_url"`
}

// TableName specifies the table name for GORM
func (Hall) TableName() string {
	return "halls"
}
