package models

import "time"

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEN        string  `gorm:"size:120;not null" json:"name_en"`
	NameRU        string  `gorm:"size:120;not null" json:"name_ru"`
	DescriptionEN string  `json:"description_en"`
	DescriptionRU string  `json:"description_ru"`
	Price         float64 `gorm:"not null" json:"price"`
	Image         string  `gorm:"size:120" json:"image"`
	Stock         int     `gorm:"not null;default:0" json:"stock"`
	// RestockAt is set when stock hits zero and cleared once the sweep
	// replenishes the product. Non-null implies stock == 0.
	RestockAt *time.Time `json:"restock_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
