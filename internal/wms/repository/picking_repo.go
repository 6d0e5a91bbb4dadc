package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type PickingRepository struct {
	db *gorm.DB
}

func NewPickingRepository(db *gorm.DB) *PickingRepository {
	return &PickingRepository{db: db}
}

func (r *PickingRepository) GetWithLines(id uint) (*entity.PickingTask, error) {
	var task entity.PickingTask
	err := r.db.Preload("Lines").First(&task, id).Error
	return &task, err
}

type PickingListParams struct {
	WarehouseID     uint
	OutboundOrderID uint
	Status          string
}

func (r *PickingRepository) List(params PickingListParams) ([]entity.PickingTask, error) {
	query := r.db.Model(&entity.PickingTask{}).Preload("Lines")
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.OutboundOrderID != 0 {
		query = query.Where("outbound_order_id = ?", params.OutboundOrderID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	var tasks []entity.PickingTask
	err := query.Order("id").Find(&tasks).Error
	return tasks, err
}
