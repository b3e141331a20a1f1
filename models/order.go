package models

import "time"

// Order is an immutable snapshot created at checkout. Totals, item prices
// and the applied discount are frozen at purchase time; later catalog or
// promo changes never alter it.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"size:64;uniqueIndex" json:"order_ref"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	Total           float64     `gorm:"not null" json:"total"`
	Date            time.Time   `gorm:"not null" json:"date"`
	DeliveryAddress string      `gorm:"not null" json:"delivery_address"`
	Latitude        *float64    `json:"latitude,omitempty"`
	Longitude       *float64    `json:"longitude,omitempty"`
	PromoCodeID     *uint       `json:"promo_code_id,omitempty"`
	DiscountApplied float64     `json:"discount_applied"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem snapshots product name and unit price at time of purchase.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	NameEN    string  `json:"name_en"`
	NameRU    string  `json:"name_ru"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
