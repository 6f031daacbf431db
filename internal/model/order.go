package model

import "time"

// OrderStatusPending is the status assigned to newly created orders.
// Status is otherwise free text, mutated only by admins.
const OrderStatusPending = "pending"

// Order records a purchase of one product by one user. TotalPrice is
// frozen at creation time and never recomputed from the product.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	ProductID  uint      `json:"product_id" gorm:"not null;index"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice float64   `json:"total_price" gorm:"not null"`
	Status     string    `json:"status" gorm:"size:100;default:'pending'"`
	CreatedAt  time.Time `json:"created_at"`

	// Populated by join-enriched reads, never persisted.
	ProductName  string `json:"product_name,omitempty" gorm:"->;-:migration"`
	ProductImage string `json:"product_image,omitempty" gorm:"->;-:migration"`
	UserEmail    string `json:"user_email,omitempty" gorm:"->;-:migration"`
}
