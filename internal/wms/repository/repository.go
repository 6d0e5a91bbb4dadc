package repository

import "gorm.io/gorm"

// Repositories is the set of WMS data accessors.
type Repositories struct {
	Warehouse *WarehouseRepository
	Item      *ItemRepository
	Partner   *PartnerRepository
	Inventory *InventoryRepository
	Movement  *MovementRepository
	Tare      *TareRepository
	Inbound   *InboundOrderRepository
	Outbound  *OutboundOrderRepository
	Picking   *PickingRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Warehouse: NewWarehouseRepository(db),
		Item:      NewItemRepository(db),
		Partner:   NewPartnerRepository(db),
		Inventory: NewInventoryRepository(db),
		Movement:  NewMovementRepository(db),
		Tare:      NewTareRepository(db),
		Inbound:   NewInboundOrderRepository(db),
		Outbound:  NewOutboundOrderRepository(db),
		Picking:   NewPickingRepository(db),
	}
}
