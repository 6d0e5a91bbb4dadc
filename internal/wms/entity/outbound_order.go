package entity

import "time"

// OutboundStatus states of the fulfillment workflow.
const (
	OutboundStatusDraft     = "draft"
	OutboundStatusPicking   = "picking"
	OutboundStatusPacked    = "packed"
	OutboundStatusShipped   = "shipped"
	OutboundStatusCancelled = "cancelled"
)

// OutboundOrder is a demand to ship items to a partner.
type OutboundOrder struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ExternalNumber string    `json:"external_number" gorm:"size:100;not null"`
	WarehouseID    uint      `json:"warehouse_id" gorm:"not null;index"`
	PartnerID      *uint     `json:"partner_id" gorm:"index"`
	Status         string    `json:"status" gorm:"size:30;not null;default:draft"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Lines []OutboundOrderLine `json:"lines,omitempty" gorm:"foreignKey:OutboundOrderID;constraint:OnDelete:CASCADE"`
}

func (OutboundOrder) TableName() string {
	return "outbound_orders"
}

// OutboundOrderLine accumulates picked and shipped quantity against the
// ordered amount.
type OutboundOrderLine struct {
	ID              uint `json:"id" gorm:"primaryKey"`
	OutboundOrderID uint `json:"outbound_order_id" gorm:"not null;index"`
	ItemID          uint `json:"item_id" gorm:"not null"`
	OrderedQty      int  `json:"ordered_qty" gorm:"not null"`
	PickedQty       int  `json:"picked_qty" gorm:"not null;default:0"`
	ShippedQty      int  `json:"shipped_qty" gorm:"not null;default:0"`
}

func (OutboundOrderLine) TableName() string {
	return "outbound_order_lines"
}
