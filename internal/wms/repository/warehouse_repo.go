package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) Get(id uint) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.db.First(&w, id).Error
	return &w, err
}

func (r *WarehouseRepository) GetByCode(code string) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.db.Where("code = ?", code).First(&w).Error
	return &w, err
}

func (r *WarehouseRepository) List() ([]entity.Warehouse, error) {
	var items []entity.Warehouse
	err := r.db.Order("id").Find(&items).Error
	return items, err
}

func (r *WarehouseRepository) Create(w *entity.Warehouse) error {
	return r.db.Create(w).Error
}

func (r *WarehouseRepository) GetZone(id uint) (*entity.Zone, error) {
	var z entity.Zone
	err := r.db.First(&z, id).Error
	return &z, err
}

func (r *WarehouseRepository) ListZones(warehouseID uint) ([]entity.Zone, error) {
	query := r.db.Model(&entity.Zone{})
	if warehouseID != 0 {
		query = query.Where("warehouse_id = ?", warehouseID)
	}
	var zones []entity.Zone
	err := query.Order("id").Find(&zones).Error
	return zones, err
}

func (r *WarehouseRepository) CreateZone(z *entity.Zone) error {
	return r.db.Create(z).Error
}

// GetLocation loads a location with its zone so callers can check zone_type.
func (r *WarehouseRepository) GetLocation(id uint) (*entity.Location, error) {
	var loc entity.Location
	err := r.db.Preload("Zone").First(&loc, id).Error
	return &loc, err
}

type LocationListParams struct {
	WarehouseID uint
	ZoneID      uint
}

func (r *WarehouseRepository) ListLocations(params LocationListParams) ([]entity.Location, error) {
	query := r.db.Model(&entity.Location{})
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.ZoneID != 0 {
		query = query.Where("zone_id = ?", params.ZoneID)
	}
	var locations []entity.Location
	err := query.Order("id").Find(&locations).Error
	return locations, err
}

func (r *WarehouseRepository) CreateLocation(loc *entity.Location) error {
	return r.db.Create(loc).Error
}
