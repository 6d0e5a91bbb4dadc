package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// incrementInventory adds qty to the (warehouse, location, item) counter,
// creating the row when absent. A supplied tareID overwrites the row's tare
// reference (last writer wins). Must run inside a transaction; the row is
// locked FOR UPDATE so concurrent mutations of the same key serialize.
func incrementInventory(tx *gorm.DB, warehouseID, locationID, itemID uint, qty int, tareID *uint) (*entity.Inventory, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("increment of %d: %w", qty, wmserr.ErrInvalidQuantity)
	}

	var warehouse entity.Warehouse
	if err := tx.First(&warehouse, warehouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("warehouse %d: %w", warehouseID, wmserr.ErrNotFound)
		}
		return nil, err
	}

	var location entity.Location
	if err := tx.First(&location, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("location %d: %w", locationID, wmserr.ErrNotFound)
		}
		return nil, err
	}
	if location.WarehouseID != warehouseID {
		return nil, fmt.Errorf("location %d belongs to warehouse %d, not %d: %w",
			locationID, location.WarehouseID, warehouseID, wmserr.ErrLocationMismatch)
	}

	var item entity.Item
	if err := tx.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", itemID, wmserr.ErrNotFound)
		}
		return nil, err
	}

	var inv entity.Inventory
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("warehouse_id = ? AND location_id = ? AND item_id = ?", warehouseID, locationID, itemID).
		First(&inv).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		inv = entity.Inventory{
			WarehouseID: warehouseID,
			LocationID:  locationID,
			ItemID:      itemID,
			TareID:      tareID,
			Quantity:    qty,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		inv.Quantity += qty
		if tareID != nil {
			inv.TareID = tareID
		}
		if err := tx.Save(&inv).Error; err != nil {
			return nil, err
		}
	}
	return &inv, nil
}

// decrementInventory subtracts qty from the counter and deletes the row when
// it reaches zero, so listings never surface empty locations. Fails when no
// row exists or the locked quantity is short.
func decrementInventory(tx *gorm.DB, warehouseID, locationID, itemID uint, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("decrement of %d: %w", qty, wmserr.ErrInvalidQuantity)
	}

	var inv entity.Inventory
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("warehouse_id = ? AND location_id = ? AND item_id = ?", warehouseID, locationID, itemID).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("item %d at location %d: need %d, have 0: %w",
			itemID, locationID, qty, wmserr.ErrInsufficientStock)
	}
	if err != nil {
		return err
	}
	if inv.Quantity < qty {
		return fmt.Errorf("item %d at location %d: need %d, have %d: %w",
			itemID, locationID, qty, inv.Quantity, wmserr.ErrInsufficientStock)
	}

	inv.Quantity -= qty
	if inv.Quantity == 0 {
		return tx.Delete(&inv).Error
	}
	return tx.Save(&inv).Error
}

// recordMovement appends one ledger movement. Validation happened in the
// caller; qty is checked as the only local invariant.
func recordMovement(tx *gorm.DB, warehouseID, itemID uint, from, to *uint, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("movement of %d: %w", qty, wmserr.ErrInvalidQuantity)
	}
	return tx.Create(&entity.Movement{
		WarehouseID:    warehouseID,
		ItemID:         itemID,
		FromLocationID: from,
		ToLocationID:   to,
		Quantity:       qty,
	}).Error
}

type InventoryService struct {
	db   *gorm.DB
	repo *repository.InventoryRepository
}

func NewInventoryService(db *gorm.DB, repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{db: db, repo: repo}
}

func (s *InventoryService) List(params repository.InventoryListParams) ([]entity.Inventory, error) {
	return s.repo.List(params)
}

type InventoryInboundRequest struct {
	WarehouseID uint  `json:"warehouse_id" binding:"required"`
	LocationID  uint  `json:"location_id" binding:"required"`
	ItemID      uint  `json:"item_id" binding:"required"`
	Qty         int   `json:"qty" binding:"required,gt=0"`
	TareID      *uint `json:"tare_id"`
}

// Inbound puts qty of an item directly onto a location and records the
// receipt movement (from = null).
func (s *InventoryService) Inbound(ctx context.Context, req InventoryInboundRequest) (*entity.Inventory, error) {
	var inv *entity.Inventory
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		inv, err = incrementInventory(tx, req.WarehouseID, req.LocationID, req.ItemID, req.Qty, req.TareID)
		if err != nil {
			return err
		}
		return recordMovement(tx, req.WarehouseID, req.ItemID, nil, &req.LocationID, req.Qty)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

type InventoryMoveRequest struct {
	WarehouseID    uint `json:"warehouse_id" binding:"required"`
	FromLocationID uint `json:"from_location_id" binding:"required"`
	ToLocationID   uint `json:"to_location_id" binding:"required"`
	ItemID         uint `json:"item_id" binding:"required"`
	Qty            int  `json:"qty" binding:"required,gt=0"`
}

// Move transfers qty between two locations of one warehouse. Both legs run in
// one transaction: either the source is decremented and the target
// incremented, or nothing changes.
func (s *InventoryService) Move(ctx context.Context, req InventoryMoveRequest) error {
	if req.FromLocationID == req.ToLocationID {
		return fmt.Errorf("source and target are both location %d: %w", req.FromLocationID, wmserr.ErrInvalidMove)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from entity.Location
		if err := tx.First(&from, req.FromLocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("location %d: %w", req.FromLocationID, wmserr.ErrNotFound)
			}
			return err
		}
		if from.WarehouseID != req.WarehouseID {
			return fmt.Errorf("location %d belongs to warehouse %d, not %d: %w",
				req.FromLocationID, from.WarehouseID, req.WarehouseID, wmserr.ErrLocationMismatch)
		}

		if err := decrementInventory(tx, req.WarehouseID, req.FromLocationID, req.ItemID, req.Qty); err != nil {
			return err
		}
		if _, err := incrementInventory(tx, req.WarehouseID, req.ToLocationID, req.ItemID, req.Qty, nil); err != nil {
			return err
		}
		return recordMovement(tx, req.WarehouseID, req.ItemID, &req.FromLocationID, &req.ToLocationID, req.Qty)
	})
}
