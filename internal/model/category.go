package model

import "time"

// Category groups products for browsing. Deleting a category does not
// cascade to its products; they keep a dangling category_id.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Image     string    `json:"image,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}
