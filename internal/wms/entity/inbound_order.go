package entity

import "time"

// InboundStatus states of the receiving workflow. The legacy aliases are
// accepted on input for backward compatibility with older integrations.
const (
	InboundStatusReadyForReceiving = "ready_for_receiving"
	InboundStatusReceiving         = "receiving"
	InboundStatusProblem           = "problem"
	InboundStatusMisSort           = "mis_sort"
	InboundStatusReceived          = "received"
	InboundStatusCancelled         = "cancelled"

	// legacy aliases
	InboundStatusDraft      = "draft"       // = ready_for_receiving
	InboundStatusInProgress = "in_progress" // = receiving
	InboundStatusCompleted  = "completed"   // = received
)

// NormalizeInboundStatus maps legacy aliases onto current statuses.
func NormalizeInboundStatus(s string) string {
	switch s {
	case InboundStatusDraft:
		return InboundStatusReadyForReceiving
	case InboundStatusInProgress:
		return InboundStatusReceiving
	case InboundStatusCompleted:
		return InboundStatusReceived
	}
	return s
}

// InboundLineStatus per-line receiving facts.
const (
	LineStatusOpen              = "open"
	LineStatusPartiallyReceived = "partially_received"
	LineStatusFullyReceived     = "fully_received"
	LineStatusOverReceived      = "over_received"
	LineStatusMisSort           = "mis_sort"
)

// InboundOrder is an expected receipt from a partner.
type InboundOrder struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ExternalNumber string    `json:"external_number" gorm:"size:100;not null"`
	WarehouseID    uint      `json:"warehouse_id" gorm:"not null;index"`
	PartnerID      *uint     `json:"partner_id" gorm:"index"`
	Status         string    `json:"status" gorm:"size:30;not null;default:ready_for_receiving"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Lines []InboundOrderLine `json:"lines,omitempty" gorm:"foreignKey:InboundOrderID;constraint:OnDelete:CASCADE"`
}

func (InboundOrder) TableName() string {
	return "inbound_orders"
}

// InboundOrderLine tracks expected vs received quantity for one item. A line
// with expected_qty=0 is an unplanned receipt (mis-sort).
type InboundOrderLine struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	InboundOrderID uint   `json:"inbound_order_id" gorm:"not null;index"`
	ItemID         uint   `json:"item_id" gorm:"not null"`
	ExpectedQty    int    `json:"expected_qty" gorm:"not null"`
	ReceivedQty    int    `json:"received_qty" gorm:"not null;default:0"`
	LocationID     *uint  `json:"location_id"`
	LineStatus     string `json:"line_status" gorm:"size:50"`
}

func (InboundOrderLine) TableName() string {
	return "inbound_order_lines"
}

// InboundReceipt is the audit trail of individual receive calls.
type InboundReceipt struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	InboundOrderID uint      `json:"inbound_order_id" gorm:"not null;index"`
	LineID         *uint     `json:"line_id"`
	TareID         uint      `json:"tare_id" gorm:"not null;index"`
	ItemID         uint      `json:"item_id" gorm:"not null"`
	Quantity       int       `json:"quantity" gorm:"not null"`
	Condition      string    `json:"condition" gorm:"size:50"`
	CreatedAt      time.Time `json:"created_at"`
}

func (InboundReceipt) TableName() string {
	return "inbound_receipts"
}
