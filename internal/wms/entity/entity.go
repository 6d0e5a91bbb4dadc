package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates all WMS tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// topology
		&Warehouse{},
		&Zone{},
		&Location{},

		// master data
		&Item{},
		&Partner{},

		// containers
		&TareType{},
		&Tare{},
		&TareItem{},

		// ledger
		&Inventory{},
		&Movement{},

		// inbound
		&InboundOrder{},
		&InboundOrderLine{},
		&InboundReceipt{},

		// outbound
		&OutboundOrder{},
		&OutboundOrderLine{},

		// picking
		&PickingTask{},
		&PickingTaskLine{},
	)
}
