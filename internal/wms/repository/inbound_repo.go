package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type InboundOrderRepository struct {
	db *gorm.DB
}

func NewInboundOrderRepository(db *gorm.DB) *InboundOrderRepository {
	return &InboundOrderRepository{db: db}
}

func (r *InboundOrderRepository) GetWithLines(id uint) (*entity.InboundOrder, error) {
	var order entity.InboundOrder
	err := r.db.Preload("Lines").First(&order, id).Error
	return &order, err
}

type InboundListParams struct {
	WarehouseID    uint
	Status         string
	PartnerID      uint
	ExternalNumber string
}

func (r *InboundOrderRepository) List(params InboundListParams) ([]entity.InboundOrder, error) {
	query := r.db.Model(&entity.InboundOrder{}).Preload("Lines")
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.PartnerID != 0 {
		query = query.Where("partner_id = ?", params.PartnerID)
	}
	if params.ExternalNumber != "" {
		query = query.Where("external_number ILIKE ?", "%"+params.ExternalNumber+"%")
	}
	var orders []entity.InboundOrder
	err := query.Order("id").Find(&orders).Error
	return orders, err
}

func (r *InboundOrderRepository) Create(order *entity.InboundOrder) error {
	return r.db.Create(order).Error
}
