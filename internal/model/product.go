package model

import "time"

// Product is a catalog entry. Prices are stored as REAL columns and kept
// as float64 to match the storefront's JSON number contract.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Description   string    `json:"description,omitempty" gorm:"size:1024"`
	Price         float64   `json:"price" gorm:"not null"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Discount      int       `json:"discount" gorm:"default:0"`
	Rating        float64   `json:"rating" gorm:"default:0"`
	Reviews       int       `json:"reviews" gorm:"default:0"`
	Image         string    `json:"image,omitempty" gorm:"size:512"`
	CategoryID    *uint     `json:"category_id,omitempty" gorm:"index"`
	CreatedAt     time.Time `json:"created_at"`

	// Populated by join-enriched reads, never persisted.
	CategoryName string `json:"category_name,omitempty" gorm:"->;-:migration"`
}
