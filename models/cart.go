package models

import "time"

// CartItem is one line of a user's cart. A user holds at most one row per
// product; repeated adds increment Quantity.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	AddedAt   time.Time `json:"added_at"`
}
