package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type OutboundOrderRepository struct {
	db *gorm.DB
}

func NewOutboundOrderRepository(db *gorm.DB) *OutboundOrderRepository {
	return &OutboundOrderRepository{db: db}
}

func (r *OutboundOrderRepository) GetWithLines(id uint) (*entity.OutboundOrder, error) {
	var order entity.OutboundOrder
	err := r.db.Preload("Lines").First(&order, id).Error
	return &order, err
}

type OutboundListParams struct {
	WarehouseID uint
	Status      string
	PartnerID   uint
}

func (r *OutboundOrderRepository) List(params OutboundListParams) ([]entity.OutboundOrder, error) {
	query := r.db.Model(&entity.OutboundOrder{}).Preload("Lines")
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.PartnerID != 0 {
		query = query.Where("partner_id = ?", params.PartnerID)
	}
	var orders []entity.OutboundOrder
	err := query.Order("id").Find(&orders).Error
	return orders, err
}

func (r *OutboundOrderRepository) Create(order *entity.OutboundOrder) error {
	return r.db.Create(order).Error
}
