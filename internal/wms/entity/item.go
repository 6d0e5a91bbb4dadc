package entity

import "time"

// Item is a stock-keeping unit.
type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SKU       string    `json:"sku" gorm:"column:sku;size:100;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Barcode   string    `json:"barcode" gorm:"size:100"`
	Unit      string    `json:"unit" gorm:"size:20;not null;default:pcs"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}
