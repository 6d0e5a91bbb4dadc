package entity

import "time"

// Inventory is one quantity counter keyed by (warehouse, location, item).
// It is the only truly shared mutable state in the system: every stock
// operation serializes on these rows. A row whose quantity reaches zero is
// deleted, never kept around.
type Inventory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WarehouseID uint      `json:"warehouse_id" gorm:"not null;uniqueIndex:idx_inventory_key"`
	LocationID  uint      `json:"location_id" gorm:"not null;uniqueIndex:idx_inventory_key"`
	ItemID      uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_inventory_key"`
	TareID      *uint     `json:"tare_id"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventory"
}
