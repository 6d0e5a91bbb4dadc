package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type TareRepository struct {
	db *gorm.DB
}

func NewTareRepository(db *gorm.DB) *TareRepository {
	return &TareRepository{db: db}
}

func (r *TareRepository) Get(id uint) (*entity.Tare, error) {
	var t entity.Tare
	err := r.db.First(&t, id).Error
	return &t, err
}

func (r *TareRepository) GetWithItems(id uint) (*entity.Tare, error) {
	var t entity.Tare
	err := r.db.Preload("Items").First(&t, id).Error
	return &t, err
}

type TareListParams struct {
	WarehouseID uint
	LocationID  uint
	Status      string
}

func (r *TareRepository) List(params TareListParams) ([]entity.Tare, error) {
	query := r.db.Model(&entity.Tare{})
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.LocationID != 0 {
		query = query.Where("location_id = ?", params.LocationID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	var tares []entity.Tare
	err := query.Order("id").Find(&tares).Error
	return tares, err
}

func (r *TareRepository) Create(t *entity.Tare) error {
	return r.db.Create(t).Error
}

// TareItemWithItem is a manifest line joined with item master data.
type TareItemWithItem struct {
	ID       uint   `json:"id"`
	TareID   uint   `json:"tare_id"`
	ItemID   uint   `json:"item_id"`
	Quantity int    `json:"quantity"`
	ItemSKU  string `json:"item_sku"`
	ItemName string `json:"item_name"`
	ItemUnit string `json:"item_unit"`
}

func (r *TareRepository) ListItems(tareID uint) ([]TareItemWithItem, error) {
	var rows []TareItemWithItem
	err := r.db.Table("tare_items").
		Select("tare_items.id, tare_items.tare_id, tare_items.item_id, tare_items.quantity, items.sku AS item_sku, items.name AS item_name, items.unit AS item_unit").
		Joins("JOIN items ON items.id = tare_items.item_id").
		Where("tare_items.tare_id = ?", tareID).
		Order("tare_items.id").
		Scan(&rows).Error
	return rows, err
}

func (r *TareRepository) GetType(id uint) (*entity.TareType, error) {
	var tt entity.TareType
	err := r.db.First(&tt, id).Error
	return &tt, err
}

func (r *TareRepository) GetTypeByCode(code string) (*entity.TareType, error) {
	var tt entity.TareType
	err := r.db.Where("code = ?", code).First(&tt).Error
	return &tt, err
}

func (r *TareRepository) ListTypes() ([]entity.TareType, error) {
	var types []entity.TareType
	err := r.db.Order("id").Find(&types).Error
	return types, err
}

func (r *TareRepository) CreateType(tt *entity.TareType) error {
	return r.db.Create(tt).Error
}

// LastCode returns the most recently issued tare code for a type/prefix pair,
// empty when none exists yet.
func (r *TareRepository) LastCode(typeID uint, prefix string) (string, error) {
	var code string
	err := r.db.Model(&entity.Tare{}).
		Where("type_id = ? AND tare_code LIKE ?", typeID, prefix+"-%").
		Order("id DESC").
		Limit(1).
		Pluck("tare_code", &code).Error
	return code, err
}

func (r *TareRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Tare{}).Where("tare_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *TareRepository) CountByType(typeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Tare{}).Where("type_id = ?", typeID).Count(&count).Error
	return count, err
}
