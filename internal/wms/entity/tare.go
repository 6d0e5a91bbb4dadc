package entity

import "time"

// TareStatus lifecycle of a container.
const (
	TareStatusInbound  = "inbound"
	TareStatusStorage  = "storage"
	TareStatusPicking  = "picking"
	TareStatusOutbound = "outbound"
	TareStatusClosed   = "closed"
)

// TareType describes a class of containers (pallet, box, tote). Prefix seeds
// tare code generation, level classifies nesting depth.
type TareType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Prefix    string    `json:"prefix" gorm:"size:50;not null"`
	Level     int       `json:"level" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TareType) TableName() string {
	return "tare_types"
}

// Tare is a physical container moving stock between locations. LocationID is
// null until the tare is placed. Its manifest (TareItem lines) is kept in sync
// with the inventory ledger by the receiving and closing flows.
type Tare struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	WarehouseID  uint      `json:"warehouse_id" gorm:"not null;index"`
	LocationID   *uint     `json:"location_id" gorm:"index"`
	TypeID       uint      `json:"type_id" gorm:"not null"`
	TareCode     string    `json:"tare_code" gorm:"size:100;not null;uniqueIndex"`
	ParentTareID *uint     `json:"parent_tare_id"`
	Status       string    `json:"status" gorm:"size:20;not null;default:inbound"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Type  *TareType  `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	Items []TareItem `json:"items,omitempty" gorm:"foreignKey:TareID;constraint:OnDelete:CASCADE"`
}

func (Tare) TableName() string {
	return "tares"
}

// TareItem is one manifest line: what is physically inside the container.
type TareItem struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	TareID   uint `json:"tare_id" gorm:"not null;index"`
	ItemID   uint `json:"item_id" gorm:"not null"`
	Quantity int  `json:"quantity" gorm:"not null;default:0"`
}

func (TareItem) TableName() string {
	return "tare_items"
}
