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

var outboundTransitions = map[string][]string{
	entity.OutboundStatusDraft:     {entity.OutboundStatusPicking, entity.OutboundStatusCancelled},
	entity.OutboundStatusPicking:   {entity.OutboundStatusPacked, entity.OutboundStatusCancelled},
	entity.OutboundStatusPacked:    {entity.OutboundStatusShipped, entity.OutboundStatusCancelled},
	entity.OutboundStatusShipped:   {},
	entity.OutboundStatusCancelled: {},
}

type OutboundService struct {
	db          *gorm.DB
	repo        *repository.OutboundOrderRepository
	whRepo      *repository.WarehouseRepository
	partnerRepo *repository.PartnerRepository
	itemRepo    *repository.ItemRepository
}

func NewOutboundService(db *gorm.DB, repo *repository.OutboundOrderRepository, whRepo *repository.WarehouseRepository, partnerRepo *repository.PartnerRepository, itemRepo *repository.ItemRepository) *OutboundService {
	return &OutboundService{db: db, repo: repo, whRepo: whRepo, partnerRepo: partnerRepo, itemRepo: itemRepo}
}

func (s *OutboundService) List(params repository.OutboundListParams) ([]entity.OutboundOrder, error) {
	return s.repo.List(params)
}

func (s *OutboundService) Get(id uint) (*entity.OutboundOrder, error) {
	order, err := s.repo.GetWithLines(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("outbound order %d: %w", id, wmserr.ErrNotFound)
	}
	return order, err
}

type CreateOutboundLineRequest struct {
	ItemID     uint `json:"item_id" binding:"required"`
	OrderedQty int  `json:"ordered_qty" binding:"required,gt=0"`
}

type CreateOutboundOrderRequest struct {
	ExternalNumber string                      `json:"external_number" binding:"required"`
	WarehouseID    uint                        `json:"warehouse_id" binding:"required"`
	PartnerID      *uint                       `json:"partner_id"`
	Lines          []CreateOutboundLineRequest `json:"lines"`
}

func (s *OutboundService) Create(ctx context.Context, req CreateOutboundOrderRequest) (*entity.OutboundOrder, error) {
	if _, err := s.whRepo.Get(req.WarehouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("warehouse %d: %w", req.WarehouseID, wmserr.ErrNotFound)
		}
		return nil, err
	}
	if req.PartnerID != nil {
		if _, err := s.partnerRepo.Get(*req.PartnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("partner %d: %w", *req.PartnerID, wmserr.ErrNotFound)
			}
			return nil, err
		}
	}
	for _, line := range req.Lines {
		if _, err := s.itemRepo.Get(line.ItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("item %d: %w", line.ItemID, wmserr.ErrNotFound)
			}
			return nil, err
		}
	}

	order := &entity.OutboundOrder{
		ExternalNumber: req.ExternalNumber,
		WarehouseID:    req.WarehouseID,
		PartnerID:      req.PartnerID,
		Status:         entity.OutboundStatusDraft,
	}
	for _, line := range req.Lines {
		order.Lines = append(order.Lines, entity.OutboundOrderLine{
			ItemID:     line.ItemID,
			OrderedQty: line.OrderedQty,
		})
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus applies a manual transition. Setting the current status again
// is a no-op success.
func (s *OutboundService) UpdateStatus(ctx context.Context, id uint, newStatus string) (*entity.OutboundOrder, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status == newStatus {
		return order, nil
	}

	allowed := outboundTransitions[order.Status]
	found := false
	for _, a := range allowed {
		if a == newStatus {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("outbound order %d: %s -> %s: %w", id, order.Status, newStatus, wmserr.ErrInvalidTransition)
	}

	order.Status = newStatus
	if err := s.db.WithContext(ctx).Model(&entity.OutboundOrder{}).Where("id = ?", id).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	return order, nil
}
