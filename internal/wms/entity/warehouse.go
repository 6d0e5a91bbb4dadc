package entity

import (
	"time"
)

// ZoneType classifies a zone and gates which tare movements are legal through it.
const (
	ZoneTypeInbound  = "inbound"
	ZoneTypeStorage  = "storage"
	ZoneTypeOutbound = "outbound"
)

// ValidZoneType reports whether s is one of the known zone types.
func ValidZoneType(s string) bool {
	switch s {
	case ZoneTypeInbound, ZoneTypeStorage, ZoneTypeOutbound:
		return true
	}
	return false
}

// Warehouse is the root of the storage topology.
type Warehouse struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Code      string    `json:"code" gorm:"size:50;not null;uniqueIndex"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Zones []Zone `json:"zones,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}

// Zone groups locations of one zone type inside a warehouse.
type Zone struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WarehouseID uint      `json:"warehouse_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Code        string    `json:"code" gorm:"size:50;not null"`
	ZoneType    string    `json:"zone_type" gorm:"size:20;not null;default:storage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`
	Locations []Location `json:"locations,omitempty" gorm:"foreignKey:ZoneID"`
}

func (Zone) TableName() string {
	return "zones"
}

// Location is a single addressable cell. ZoneID is nullable: a location may
// exist before it is assigned to a zone, but zone-gated operations reject it.
type Location struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WarehouseID uint      `json:"warehouse_id" gorm:"not null;index"`
	ZoneID      *uint     `json:"zone_id" gorm:"index"`
	Code        string    `json:"code" gorm:"size:50;not null;index"`
	Description string    `json:"description" gorm:"size:255"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Zone *Zone `json:"zone,omitempty" gorm:"foreignKey:ZoneID"`
}

func (Location) TableName() string {
	return "locations"
}
