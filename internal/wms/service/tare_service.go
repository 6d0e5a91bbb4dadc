package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"
	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PutAwayPolicy is the zone-type allow-list applied by PutAway. The same
// generic move primitive serves ad-hoc relocations with caller-supplied
// lists.
type PutAwayPolicy struct {
	FromZones []string
	ToZones   []string
}

func DefaultPutAwayPolicy() PutAwayPolicy {
	return PutAwayPolicy{
		FromZones: []string{entity.ZoneTypeInbound},
		ToZones:   []string{entity.ZoneTypeStorage, entity.ZoneTypeOutbound},
	}
}

type TareService struct {
	db     *gorm.DB
	repo   *repository.TareRepository
	whRepo *repository.WarehouseRepository
	rdb    *redis.Client
	Policy PutAwayPolicy
}

func NewTareService(db *gorm.DB, repo *repository.TareRepository, whRepo *repository.WarehouseRepository, rdb *redis.Client) *TareService {
	return &TareService{
		db:     db,
		repo:   repo,
		whRepo: whRepo,
		rdb:    rdb,
		Policy: DefaultPutAwayPolicy(),
	}
}

func (s *TareService) List(params repository.TareListParams) ([]entity.Tare, error) {
	return s.repo.List(params)
}

// Get returns a tare together with its manifest lines.
func (s *TareService) Get(id uint) (*entity.Tare, error) {
	tare, err := s.repo.GetWithItems(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("tare %d: %w", id, wmserr.ErrNotFound)
	}
	return tare, err
}

func (s *TareService) ListItems(id uint) ([]repository.TareItemWithItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.repo.ListItems(id)
}

func (s *TareService) ListTypes() ([]entity.TareType, error) {
	return s.repo.ListTypes()
}

type CreateTareTypeRequest struct {
	Code   string `json:"code" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Prefix string `json:"prefix" binding:"required"`
	Level  int    `json:"level"`
}

func (s *TareService) CreateType(req CreateTareTypeRequest) (*entity.TareType, error) {
	if _, err := s.repo.GetTypeByCode(req.Code); err == nil {
		return nil, fmt.Errorf("tare type code %q: %w", req.Code, wmserr.ErrDuplicateKey)
	}
	level := req.Level
	if level == 0 {
		level = 1
	}
	tt := &entity.TareType{
		Code:   req.Code,
		Name:   req.Name,
		Prefix: req.Prefix,
		Level:  level,
	}
	if err := s.repo.CreateType(tt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("tare type code %q: %w", req.Code, wmserr.ErrDuplicateKey)
		}
		return nil, err
	}
	return tt, nil
}

// tareSeqKey is the Redis key of the per-type code sequence.
func tareSeqKey(typeCode string) string {
	return "wms:tare_seq:" + typeCode
}

// GenerateCode issues the next tare code for a type, format <prefix>-%06d.
// With Redis configured an atomic INCR counter is used; otherwise the last
// issued suffix is scanned from the database and a few candidates after it
// are probed, falling back to a count-based number when all collide. The
// unique index on tare_code remains the final guard either way.
func (s *TareService) GenerateCode(ctx context.Context, tareType *entity.TareType) (string, error) {
	prefix := tareType.Prefix
	if prefix == "" {
		prefix = tareType.Code
	}

	if s.rdb != nil {
		for i := 0; i < 4; i++ {
			seq, err := s.rdb.Incr(ctx, tareSeqKey(tareType.Code)).Result()
			if err != nil {
				break // Redis down, fall back to the scan path
			}
			candidate := fmt.Sprintf("%s-%06d", prefix, seq)
			exists, err := s.repo.CodeExists(candidate)
			if err != nil {
				return "", err
			}
			if !exists {
				return candidate, nil
			}
			// counter was behind existing codes, bump again
		}
	}

	lastCode, err := s.repo.LastCode(tareType.ID, prefix)
	if err != nil {
		return "", err
	}
	lastNumber := 0
	if lastCode != "" {
		var n int
		if _, err := fmt.Sscanf(lastCode[len(prefix)+1:], "%d", &n); err == nil {
			lastNumber = n
		}
	}

	// probe a few candidates in case of a concurrent generator
	for step := 1; step <= 4; step++ {
		candidate := fmt.Sprintf("%s-%06d", prefix, lastNumber+step)
		exists, err := s.repo.CodeExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	count, err := s.repo.CountByType(tareType.ID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%06d", prefix, count+1), nil
}

type CreateTareRequest struct {
	WarehouseID  uint  `json:"warehouse_id" binding:"required"`
	TypeID       uint  `json:"type_id" binding:"required"`
	LocationID   *uint `json:"location_id"`
	ParentTareID *uint `json:"parent_tare_id"`
}

// Create registers a new container in status inbound. Code generation is
// retried on a uniqueness collision before surfacing DuplicateKey.
func (s *TareService) Create(ctx context.Context, req CreateTareRequest) (*entity.Tare, error) {
	if _, err := s.whRepo.Get(req.WarehouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("warehouse %d: %w", req.WarehouseID, wmserr.ErrNotFound)
		}
		return nil, err
	}
	tareType, err := s.repo.GetType(req.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tare type %d: %w", req.TypeID, wmserr.ErrNotFound)
		}
		return nil, err
	}
	if req.LocationID != nil {
		loc, err := s.whRepo.GetLocation(*req.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("location %d: %w", *req.LocationID, wmserr.ErrNotFound)
			}
			return nil, err
		}
		if loc.WarehouseID != req.WarehouseID {
			return nil, fmt.Errorf("location %d belongs to warehouse %d, not %d: %w",
				loc.ID, loc.WarehouseID, req.WarehouseID, wmserr.ErrLocationMismatch)
		}
	}
	if req.ParentTareID != nil {
		if _, err := s.repo.Get(*req.ParentTareID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("parent tare %d: %w", *req.ParentTareID, wmserr.ErrNotFound)
			}
			return nil, err
		}
	}

	var tare *entity.Tare
	for attempt := 0; attempt < 3; attempt++ {
		code, err := s.GenerateCode(ctx, tareType)
		if err != nil {
			return nil, err
		}
		tare = &entity.Tare{
			WarehouseID:  req.WarehouseID,
			LocationID:   req.LocationID,
			TypeID:       req.TypeID,
			TareCode:     code,
			ParentTareID: req.ParentTareID,
			Status:       entity.TareStatusInbound,
		}
		err = s.repo.Create(tare)
		if err == nil {
			return tare, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("tare code %q: %w", tare.TareCode, wmserr.ErrDuplicateKey)
}

// upsertTareItem accumulates qty onto the tare's manifest line for the item,
// creating the line when absent.
func upsertTareItem(tx *gorm.DB, tareID, itemID uint, qty int) error {
	var ti entity.TareItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tare_id = ? AND item_id = ?", tareID, itemID).
		First(&ti).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&entity.TareItem{TareID: tareID, ItemID: itemID, Quantity: qty}).Error
	}
	if err != nil {
		return err
	}
	ti.Quantity += qty
	return tx.Save(&ti).Error
}

type AddTareItemRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
	Qty    int  `json:"qty" binding:"required,gt=0"`
}

// AddItem puts qty of an item into the tare's manifest. The manifest and the
// inventory ledger are synchronized by the receiving and closing flows, not
// here.
func (s *TareService) AddItem(ctx context.Context, tareID uint, req AddTareItemRequest) error {
	if req.Qty <= 0 {
		return fmt.Errorf("add of %d: %w", req.Qty, wmserr.ErrInvalidQuantity)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tare entity.Tare
		if err := tx.First(&tare, tareID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tare %d: %w", tareID, wmserr.ErrNotFound)
			}
			return err
		}
		if tare.Status == entity.TareStatusClosed {
			return fmt.Errorf("tare %s: %w", tare.TareCode, wmserr.ErrAlreadyClosed)
		}
		var item entity.Item
		if err := tx.First(&item, req.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item %d: %w", req.ItemID, wmserr.ErrNotFound)
			}
			return err
		}
		return upsertTareItem(tx, tareID, req.ItemID, req.Qty)
	})
}

// Close places an unplaced tare onto a location and books its whole manifest
// into inventory there. This is the moment received stock physically enters a
// shelf.
func (s *TareService) Close(ctx context.Context, tareID, locationID uint) (*entity.Tare, error) {
	var tare entity.Tare
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&tare, tareID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tare %d: %w", tareID, wmserr.ErrNotFound)
			}
			return err
		}
		if tare.Status == entity.TareStatusClosed {
			return fmt.Errorf("tare %s: %w", tare.TareCode, wmserr.ErrAlreadyClosed)
		}
		if tare.LocationID != nil {
			return fmt.Errorf("tare %s is at location %d: %w", tare.TareCode, *tare.LocationID, wmserr.ErrAlreadyPlaced)
		}

		var location entity.Location
		if err := tx.First(&location, locationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("location %d: %w", locationID, wmserr.ErrNotFound)
			}
			return err
		}
		if location.WarehouseID != tare.WarehouseID {
			return fmt.Errorf("location %d belongs to warehouse %d, not %d: %w",
				locationID, location.WarehouseID, tare.WarehouseID, wmserr.ErrLocationMismatch)
		}

		for _, ti := range tare.Items {
			if _, err := incrementInventory(tx, tare.WarehouseID, locationID, ti.ItemID, ti.Quantity, &tare.ID); err != nil {
				return err
			}
			if err := recordMovement(tx, tare.WarehouseID, ti.ItemID, nil, &locationID, ti.Quantity); err != nil {
				return err
			}
		}

		tare.LocationID = &locationID
		tare.Status = entity.TareStatusClosed
		return tx.Save(&tare).Error
	})
	if err != nil {
		return nil, err
	}
	return &tare, nil
}

// Move relocates a placed tare to another location, transferring its whole
// manifest through the inventory ledger. Zone-type allow-lists gate both ends;
// nil or empty lists allow any zone of that end.
func (s *TareService) Move(ctx context.Context, tareID, targetLocationID uint, allowedFromZones, allowedToZones []string) (*entity.Tare, error) {
	return s.move(ctx, tareID, targetLocationID, allowedFromZones, allowedToZones, "")
}

// move is the shared relocation primitive. A non-empty newStatus is applied
// in the same transaction as the inventory transfer.
func (s *TareService) move(ctx context.Context, tareID, targetLocationID uint, allowedFromZones, allowedToZones []string, newStatus string) (*entity.Tare, error) {
	var tare entity.Tare
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&tare, tareID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tare %d: %w", tareID, wmserr.ErrNotFound)
			}
			return err
		}
		if tare.LocationID == nil {
			return fmt.Errorf("tare %s is not placed to a location: %w", tare.TareCode, wmserr.ErrInvalidMove)
		}
		if *tare.LocationID == targetLocationID {
			return fmt.Errorf("tare %s is already at location %d: %w", tare.TareCode, targetLocationID, wmserr.ErrInvalidMove)
		}

		var target entity.Location
		if err := tx.Preload("Zone").First(&target, targetLocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("target location %d: %w", targetLocationID, wmserr.ErrNotFound)
			}
			return err
		}
		var source entity.Location
		if err := tx.Preload("Zone").First(&source, *tare.LocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("source location %d: %w", *tare.LocationID, wmserr.ErrNotFound)
			}
			return err
		}
		if target.WarehouseID != tare.WarehouseID {
			return fmt.Errorf("target location %d belongs to warehouse %d, not %d: %w",
				target.ID, target.WarehouseID, tare.WarehouseID, wmserr.ErrWarehouseMismatch)
		}
		if source.WarehouseID != tare.WarehouseID {
			return fmt.Errorf("source location %d belongs to warehouse %d, not %d: %w",
				source.ID, source.WarehouseID, tare.WarehouseID, wmserr.ErrWarehouseMismatch)
		}
		if source.Zone == nil {
			return fmt.Errorf("source location %d has no zone: %w", source.ID, wmserr.ErrInvalidZoneTransition)
		}
		if target.Zone == nil {
			return fmt.Errorf("target location %d has no zone: %w", target.ID, wmserr.ErrInvalidZoneTransition)
		}
		if len(allowedFromZones) > 0 && !slices.Contains(allowedFromZones, source.Zone.ZoneType) {
			return fmt.Errorf("move out of %s zone %s: %w", source.Zone.ZoneType, source.Zone.Code, wmserr.ErrInvalidZoneTransition)
		}
		if len(allowedToZones) > 0 && !slices.Contains(allowedToZones, target.Zone.ZoneType) {
			return fmt.Errorf("move into %s zone %s: %w", target.Zone.ZoneType, target.Zone.Code, wmserr.ErrInvalidZoneTransition)
		}

		for _, ti := range tare.Items {
			if err := decrementInventory(tx, tare.WarehouseID, source.ID, ti.ItemID, ti.Quantity); err != nil {
				return err
			}
			if _, err := incrementInventory(tx, tare.WarehouseID, target.ID, ti.ItemID, ti.Quantity, &tare.ID); err != nil {
				return err
			}
			if err := recordMovement(tx, tare.WarehouseID, ti.ItemID, &source.ID, &target.ID, ti.Quantity); err != nil {
				return err
			}
		}

		tare.LocationID = &targetLocationID
		if newStatus != "" {
			tare.Status = newStatus
		}
		return tx.Save(&tare).Error
	})
	if err != nil {
		return nil, err
	}
	return &tare, nil
}

// PutAway moves a tare out of the inbound staging zone into storage, applying
// the configured zone policy, and advances its status.
func (s *TareService) PutAway(ctx context.Context, tareID, targetLocationID uint) (*entity.Tare, error) {
	return s.move(ctx, tareID, targetLocationID, s.Policy.FromZones, s.Policy.ToZones, entity.TareStatusStorage)
}
