package models

import "time"

// PromoCode is a percentage discount token. Immutable once created except
// for the IsActive flag.
type PromoCode struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	DiscountPercent int       `gorm:"not null" json:"discount_percent"`
	ValidUntil      time.Time `gorm:"not null" json:"valid_until"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
