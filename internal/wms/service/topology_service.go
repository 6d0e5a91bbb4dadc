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

type TopologyService struct {
	db   *gorm.DB
	repo *repository.WarehouseRepository
}

func NewTopologyService(db *gorm.DB, repo *repository.WarehouseRepository) *TopologyService {
	return &TopologyService{db: db, repo: repo}
}

func (s *TopologyService) ListWarehouses() ([]entity.Warehouse, error) {
	return s.repo.List()
}

func (s *TopologyService) GetWarehouse(id uint) (*entity.Warehouse, error) {
	wh, err := s.repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("warehouse %d: %w", id, wmserr.ErrNotFound)
	}
	return wh, err
}

func (s *TopologyService) GetWarehouseByCode(code string) (*entity.Warehouse, error) {
	wh, err := s.repo.GetByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("warehouse code %s: %w", code, wmserr.ErrNotFound)
	}
	return wh, err
}

type CreateWarehouseRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

func (s *TopologyService) CreateWarehouse(ctx context.Context, req CreateWarehouseRequest) (*entity.Warehouse, error) {
	wh := &entity.Warehouse{Name: req.Name, Code: req.Code, IsActive: true}
	if err := s.repo.Create(wh); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("warehouse code %s: %w", req.Code, wmserr.ErrDuplicateKey)
		}
		return nil, err
	}
	return wh, nil
}

func (s *TopologyService) ListZones(warehouseID uint) ([]entity.Zone, error) {
	if _, err := s.GetWarehouse(warehouseID); err != nil {
		return nil, err
	}
	return s.repo.ListZones(warehouseID)
}

type CreateZoneRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	ZoneType string `json:"zone_type"`
}

func (s *TopologyService) CreateZone(ctx context.Context, warehouseID uint, req CreateZoneRequest) (*entity.Zone, error) {
	if _, err := s.GetWarehouse(warehouseID); err != nil {
		return nil, err
	}
	zoneType := req.ZoneType
	if zoneType == "" {
		zoneType = entity.ZoneTypeStorage
	}
	if !entity.ValidZoneType(zoneType) {
		return nil, fmt.Errorf("zone type %q: %w", req.ZoneType, wmserr.ErrInvalidZoneType)
	}
	zone := &entity.Zone{
		WarehouseID: warehouseID,
		Name:        req.Name,
		Code:        req.Code,
		ZoneType:    zoneType,
	}
	if err := s.repo.CreateZone(zone); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("zone code %s: %w", req.Code, wmserr.ErrDuplicateKey)
		}
		return nil, err
	}
	return zone, nil
}

func (s *TopologyService) GetLocation(id uint) (*entity.Location, error) {
	loc, err := s.repo.GetLocation(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("location %d: %w", id, wmserr.ErrNotFound)
	}
	return loc, err
}

func (s *TopologyService) ListLocations(params repository.LocationListParams) ([]entity.Location, error) {
	return s.repo.ListLocations(params)
}

type CreateLocationRequest struct {
	WarehouseID uint   `json:"warehouse_id" binding:"required"`
	ZoneID      *uint  `json:"zone_id"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

func (s *TopologyService) CreateLocation(ctx context.Context, req CreateLocationRequest) (*entity.Location, error) {
	if _, err := s.GetWarehouse(req.WarehouseID); err != nil {
		return nil, err
	}
	if req.ZoneID != nil {
		zone, err := s.repo.GetZone(*req.ZoneID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("zone %d: %w", *req.ZoneID, wmserr.ErrNotFound)
			}
			return nil, err
		}
		if zone.WarehouseID != req.WarehouseID {
			return nil, fmt.Errorf("zone %d belongs to warehouse %d, not %d: %w",
				zone.ID, zone.WarehouseID, req.WarehouseID, wmserr.ErrWarehouseMismatch)
		}
	}
	loc := &entity.Location{
		WarehouseID: req.WarehouseID,
		ZoneID:      req.ZoneID,
		Code:        req.Code,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.CreateLocation(loc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("location code %s: %w", req.Code, wmserr.ErrDuplicateKey)
		}
		return nil, err
	}
	return loc, nil
}
