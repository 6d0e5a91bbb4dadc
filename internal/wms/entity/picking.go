package entity

import "time"

// PickingStatus states of a picking task.
const (
	PickingStatusNew        = "new"
	PickingStatusInProgress = "in_progress"
	PickingStatusDone       = "done"
)

// PickingTask is a generated work order allocating inventory rows to fulfill
// an outbound order. Generation only plans; inventory is decremented when
// lines complete.
type PickingTask struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	WarehouseID     uint      `json:"warehouse_id" gorm:"not null;index"`
	OutboundOrderID uint      `json:"outbound_order_id" gorm:"not null;index"`
	Status          string    `json:"status" gorm:"size:20;not null;default:new"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Lines []PickingTaskLine `json:"lines,omitempty" gorm:"foreignKey:PickingTaskID;constraint:OnDelete:CASCADE"`
}

func (PickingTask) TableName() string {
	return "picking_tasks"
}

// PickingTaskLine allocates qty_to_pick from one source location.
type PickingTaskLine struct {
	ID             uint  `json:"id" gorm:"primaryKey"`
	PickingTaskID  uint  `json:"picking_task_id" gorm:"not null;index"`
	ItemID         uint  `json:"item_id" gorm:"not null"`
	FromLocationID *uint `json:"from_location_id"`
	QtyToPick      int   `json:"qty_to_pick" gorm:"not null"`
	QtyPicked      int   `json:"qty_picked" gorm:"not null;default:0"`
}

func (PickingTaskLine) TableName() string {
	return "picking_task_lines"
}
