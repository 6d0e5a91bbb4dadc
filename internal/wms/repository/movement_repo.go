package repository

import (
	"time"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type MovementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

type MovementListParams struct {
	WarehouseID uint
	ItemID      uint
}

func (r *MovementRepository) List(params MovementListParams) ([]entity.Movement, error) {
	query := r.db.Model(&entity.Movement{})
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.ItemID != 0 {
		query = query.Where("item_id = ?", params.ItemID)
	}
	var moves []entity.Movement
	err := query.Order("created_at DESC").Find(&moves).Error
	return moves, err
}

// TurnoverRow aggregates movement quantities per (warehouse, item). Inbound is
// the sum of movements with no source location, outbound the sum with no
// target location.
type TurnoverRow struct {
	WarehouseID uint `json:"warehouse_id"`
	ItemID      uint `json:"item_id"`
	InboundQty  int  `json:"inbound_qty"`
	OutboundQty int  `json:"outbound_qty"`
}

func (r *MovementRepository) Turnover(start, end *time.Time) ([]TurnoverRow, error) {
	query := r.db.Model(&entity.Movement{}).
		Select(`warehouse_id, item_id,
			COALESCE(SUM(CASE WHEN from_location_id IS NULL THEN quantity ELSE 0 END), 0) AS inbound_qty,
			COALESCE(SUM(CASE WHEN to_location_id IS NULL THEN quantity ELSE 0 END), 0) AS outbound_qty`).
		Group("warehouse_id, item_id")
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at <= ?", *end)
	}
	var rows []TurnoverRow
	err := query.Order("warehouse_id, item_id").Scan(&rows).Error
	return rows, err
}
