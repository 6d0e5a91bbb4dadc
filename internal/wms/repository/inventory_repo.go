package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

type InventoryListParams struct {
	WarehouseID uint
	LocationID  uint
	ItemID      uint
}

func (r *InventoryRepository) List(params InventoryListParams) ([]entity.Inventory, error) {
	query := r.db.Model(&entity.Inventory{})
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.LocationID != 0 {
		query = query.Where("location_id = ?", params.LocationID)
	}
	if params.ItemID != 0 {
		query = query.Where("item_id = ?", params.ItemID)
	}
	var rows []entity.Inventory
	err := query.Order("location_id, item_id").Find(&rows).Error
	return rows, err
}

// InventorySummaryRow is total stock per (warehouse, item) across locations.
type InventorySummaryRow struct {
	WarehouseID uint `json:"warehouse_id"`
	ItemID      uint `json:"item_id"`
	Quantity    int  `json:"quantity"`
}

func (r *InventoryRepository) Summary() ([]InventorySummaryRow, error) {
	var rows []InventorySummaryRow
	err := r.db.Raw(`
		SELECT warehouse_id, item_id, COALESCE(SUM(quantity), 0) AS quantity
		FROM inventory
		GROUP BY warehouse_id, item_id
		ORDER BY warehouse_id, item_id
	`).Scan(&rows).Error
	return rows, err
}
