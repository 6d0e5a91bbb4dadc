package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Get(id uint) (*entity.Item, error) {
	var item entity.Item
	err := r.db.First(&item, id).Error
	return &item, err
}

func (r *ItemRepository) GetBySKU(sku string) (*entity.Item, error) {
	var item entity.Item
	err := r.db.Where("sku = ?", sku).First(&item).Error
	return &item, err
}

func (r *ItemRepository) List() ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.Order("id").Find(&items).Error
	return items, err
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.db.Create(item).Error
}
