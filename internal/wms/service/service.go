package service

import (
	"github.com/redis/go-redis/v9"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"gorm.io/gorm"
)

// Services bundles the WMS business layer for handler wiring.
type Services struct {
	Topology  *TopologyService
	Item      *ItemService
	Partner   *PartnerService
	Inventory *InventoryService
	Tare      *TareService
	Inbound   *InboundService
	Outbound  *OutboundService
	Picking   *PickingService
	Report    *ReportService
}

// NewServices wires all services over the shared repositories. rdb may be
// nil; tare code generation then falls back to database scans.
func NewServices(db *gorm.DB, repos *repository.Repositories, rdb *redis.Client) *Services {
	return &Services{
		Topology:  NewTopologyService(db, repos.Warehouse),
		Item:      NewItemService(repos.Item),
		Partner:   NewPartnerService(repos.Partner),
		Inventory: NewInventoryService(db, repos.Inventory),
		Tare:      NewTareService(db, repos.Tare, repos.Warehouse, rdb),
		Inbound:   NewInboundService(db, repos.Inbound, repos.Warehouse, repos.Partner, repos.Item),
		Outbound:  NewOutboundService(db, repos.Outbound, repos.Warehouse, repos.Partner, repos.Item),
		Picking:   NewPickingService(db, repos.Picking, repos.Outbound),
		Report:    NewReportService(repos.Inventory, repos.Movement),
	}
}
