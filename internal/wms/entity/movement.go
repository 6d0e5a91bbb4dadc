package entity

import "time"

// Movement is an append-only record of a quantity transfer. A null
// from-location means stock entered the warehouse, a null to-location means
// it left (shipped or consumed). Turnover reports aggregate over these.
type Movement struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	WarehouseID    uint      `json:"warehouse_id" gorm:"not null;index"`
	ItemID         uint      `json:"item_id" gorm:"not null;index"`
	FromLocationID *uint     `json:"from_location_id"`
	ToLocationID   *uint     `json:"to_location_id"`
	Quantity       int       `json:"quantity" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

func (Movement) TableName() string {
	return "movements"
}
