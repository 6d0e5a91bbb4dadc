package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
	"gorm.io/gorm"
)

type ItemService struct {
	repo *repository.ItemRepository
}

func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) List() ([]entity.Item, error) {
	return s.repo.List()
}

func (s *ItemService) Get(id uint) (*entity.Item, error) {
	item, err := s.repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item %d: %w", id, wmserr.ErrNotFound)
	}
	return item, err
}

// GetBySKU resolves an item by its unique SKU, for scanner-driven lookups.
func (s *ItemService) GetBySKU(sku string) (*entity.Item, error) {
	item, err := s.repo.GetBySKU(sku)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("sku %s: %w", sku, wmserr.ErrNotFound)
	}
	return item, err
}

type CreateItemRequest struct {
	SKU     string `json:"sku" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Barcode string `json:"barcode"`
	Unit    string `json:"unit"`
}

func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*entity.Item, error) {
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}
	item := &entity.Item{
		SKU:      req.SKU,
		Name:     req.Name,
		Barcode:  req.Barcode,
		Unit:     unit,
		IsActive: true,
	}
	if err := s.repo.Create(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("sku %s: %w", req.SKU, wmserr.ErrDuplicateKey)
		}
		return nil, err
	}
	return item, nil
}
