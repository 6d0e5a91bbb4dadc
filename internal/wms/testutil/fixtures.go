package testutil

import (
	"testing"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

// SeedWarehouse creates a warehouse.
func SeedWarehouse(t *testing.T, db *gorm.DB, name, code string) *entity.Warehouse {
	t.Helper()
	wh := &entity.Warehouse{Name: name, Code: code, IsActive: true}
	if err := db.Create(wh).Error; err != nil {
		t.Fatalf("Failed to seed warehouse: %v", err)
	}
	return wh
}

// SeedZone creates a zone of the given type in a warehouse.
func SeedZone(t *testing.T, db *gorm.DB, warehouseID uint, code, zoneType string) *entity.Zone {
	t.Helper()
	zone := &entity.Zone{WarehouseID: warehouseID, Name: code, Code: code, ZoneType: zoneType}
	if err := db.Create(zone).Error; err != nil {
		t.Fatalf("Failed to seed zone: %v", err)
	}
	return zone
}

// SeedLocation creates a location, optionally inside a zone.
func SeedLocation(t *testing.T, db *gorm.DB, warehouseID uint, zoneID *uint, code string) *entity.Location {
	t.Helper()
	loc := &entity.Location{WarehouseID: warehouseID, ZoneID: zoneID, Code: code, IsActive: true}
	if err := db.Create(loc).Error; err != nil {
		t.Fatalf("Failed to seed location: %v", err)
	}
	return loc
}

// SeedItem creates an item.
func SeedItem(t *testing.T, db *gorm.DB, sku, name string) *entity.Item {
	t.Helper()
	item := &entity.Item{SKU: sku, Name: name, Unit: "pcs", IsActive: true}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}
	return item
}

// SeedPartner creates a partner.
func SeedPartner(t *testing.T, db *gorm.DB, code, partnerType string) *entity.Partner {
	t.Helper()
	partner := &entity.Partner{Name: code, Code: code, Type: partnerType, IsActive: true}
	if err := db.Create(partner).Error; err != nil {
		t.Fatalf("Failed to seed partner: %v", err)
	}
	return partner
}

// SeedTareType creates a tare type.
func SeedTareType(t *testing.T, db *gorm.DB, code, prefix string) *entity.TareType {
	t.Helper()
	tt := &entity.TareType{Code: code, Name: code, Prefix: prefix, Level: 1}
	if err := db.Create(tt).Error; err != nil {
		t.Fatalf("Failed to seed tare type: %v", err)
	}
	return tt
}

// SeedInventory creates a stock row directly, bypassing the ledger.
func SeedInventory(t *testing.T, db *gorm.DB, warehouseID, locationID, itemID uint, qty int) *entity.Inventory {
	t.Helper()
	inv := &entity.Inventory{WarehouseID: warehouseID, LocationID: locationID, ItemID: itemID, Quantity: qty}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}
	return inv
}
