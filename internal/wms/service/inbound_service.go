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

// inboundTransitions is the allow-list of manual status changes. Keys and
// values are normalized statuses; legacy aliases are mapped before lookup.
var inboundTransitions = map[string][]string{
	entity.InboundStatusReadyForReceiving: {entity.InboundStatusReceiving, entity.InboundStatusCancelled},
	entity.InboundStatusReceiving: {
		entity.InboundStatusReceived,
		entity.InboundStatusCancelled,
		entity.InboundStatusProblem,
		entity.InboundStatusMisSort,
	},
	entity.InboundStatusProblem:   {entity.InboundStatusReceiving, entity.InboundStatusCancelled, entity.InboundStatusReceived},
	entity.InboundStatusMisSort:   {entity.InboundStatusReceiving, entity.InboundStatusCancelled, entity.InboundStatusReceived},
	entity.InboundStatusReceived:  {},
	entity.InboundStatusCancelled: {},
}

// deriveInboundStatus is a stateless reducer over line facts. It always wins
// over a manually set status after a receive call. Precedence: any mis-sort
// (including unplanned lines with expected_qty=0) > any over-receipt > all
// lines exactly received > still receiving.
func deriveInboundStatus(lines []entity.InboundOrderLine) string {
	hasMisSort := false
	hasOver := false
	allMatch := len(lines) > 0
	for _, ln := range lines {
		if ln.LineStatus == entity.LineStatusMisSort || ln.ExpectedQty == 0 {
			hasMisSort = true
		}
		if ln.ReceivedQty > ln.ExpectedQty {
			hasOver = true
		}
		if ln.ReceivedQty != ln.ExpectedQty {
			allMatch = false
		}
	}
	switch {
	case hasMisSort:
		return entity.InboundStatusMisSort
	case hasOver:
		return entity.InboundStatusProblem
	case allMatch:
		return entity.InboundStatusReceived
	default:
		return entity.InboundStatusReceiving
	}
}

// receivingFamily reports whether an order may accept receive/close-tare
// calls in its current status.
func receivingFamily(status string) bool {
	switch entity.NormalizeInboundStatus(status) {
	case entity.InboundStatusReceiving, entity.InboundStatusProblem, entity.InboundStatusMisSort:
		return true
	}
	return false
}

type InboundService struct {
	db          *gorm.DB
	repo        *repository.InboundOrderRepository
	whRepo      *repository.WarehouseRepository
	partnerRepo *repository.PartnerRepository
	itemRepo    *repository.ItemRepository
}

func NewInboundService(db *gorm.DB, repo *repository.InboundOrderRepository, whRepo *repository.WarehouseRepository, partnerRepo *repository.PartnerRepository, itemRepo *repository.ItemRepository) *InboundService {
	return &InboundService{db: db, repo: repo, whRepo: whRepo, partnerRepo: partnerRepo, itemRepo: itemRepo}
}

func (s *InboundService) List(params repository.InboundListParams) ([]entity.InboundOrder, error) {
	return s.repo.List(params)
}

func (s *InboundService) Get(id uint) (*entity.InboundOrder, error) {
	order, err := s.repo.GetWithLines(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("inbound order %d: %w", id, wmserr.ErrNotFound)
	}
	return order, err
}

type CreateInboundLineRequest struct {
	ItemID      uint   `json:"item_id" binding:"required"`
	ExpectedQty int    `json:"expected_qty" binding:"required,gt=0"`
	LocationID  *uint  `json:"location_id"`
	LineStatus  string `json:"line_status"`
}

type CreateInboundOrderRequest struct {
	ExternalNumber string                     `json:"external_number" binding:"required"`
	WarehouseID    uint                       `json:"warehouse_id" binding:"required"`
	PartnerID      *uint                      `json:"partner_id"`
	Status         string                     `json:"status"`
	Lines          []CreateInboundLineRequest `json:"lines"`
}

func (s *InboundService) Create(ctx context.Context, req CreateInboundOrderRequest) (*entity.InboundOrder, error) {
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
		if line.LocationID != nil {
			loc, err := s.whRepo.GetLocation(*line.LocationID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("location %d: %w", *line.LocationID, wmserr.ErrNotFound)
				}
				return nil, err
			}
			if loc.WarehouseID != req.WarehouseID {
				return nil, fmt.Errorf("location %d belongs to warehouse %d, not %d: %w",
					loc.ID, loc.WarehouseID, req.WarehouseID, wmserr.ErrLocationMismatch)
			}
		}
	}

	status := entity.NormalizeInboundStatus(req.Status)
	if status == "" {
		status = entity.InboundStatusReadyForReceiving
	}
	order := &entity.InboundOrder{
		ExternalNumber: req.ExternalNumber,
		WarehouseID:    req.WarehouseID,
		PartnerID:      req.PartnerID,
		Status:         status,
	}
	for _, line := range req.Lines {
		lineStatus := line.LineStatus
		if lineStatus == "" {
			lineStatus = entity.LineStatusOpen
		}
		order.Lines = append(order.Lines, entity.InboundOrderLine{
			ItemID:      line.ItemID,
			ExpectedQty: line.ExpectedQty,
			LocationID:  line.LocationID,
			LineStatus:  lineStatus,
		})
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus applies a manual transition. A self-transition is a no-op
// success; anything outside the allow-list fails.
func (s *InboundService) UpdateStatus(ctx context.Context, id uint, newStatus string) (*entity.InboundOrder, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	current := entity.NormalizeInboundStatus(order.Status)
	target := entity.NormalizeInboundStatus(newStatus)
	if current == target {
		return order, nil
	}

	allowed := inboundTransitions[current]
	found := false
	for _, a := range allowed {
		if a == target {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("inbound order %d: %s -> %s: %w", id, order.Status, newStatus, wmserr.ErrInvalidTransition)
	}

	order.Status = target
	if err := s.db.WithContext(ctx).Model(&entity.InboundOrder{}).Where("id = ?", id).Update("status", target).Error; err != nil {
		return nil, err
	}
	return order, nil
}

type InboundReceiveRequest struct {
	TareID    uint   `json:"tare_id" binding:"required"`
	LineID    *uint  `json:"line_id"`
	ItemID    *uint  `json:"item_id"`
	Qty       int    `json:"qty" binding:"required,gt=0"`
	Condition string `json:"condition"`
}

// Receive books qty of an item into a tare against the order. Inventory is
// not touched here; stock enters a location only when the tare is closed.
// An item with no matching expected line creates an ad-hoc mis-sort line.
func (s *InboundService) Receive(ctx context.Context, orderID uint, req InboundReceiveRequest) (*entity.InboundOrder, error) {
	if req.Qty <= 0 {
		return nil, fmt.Errorf("receive of %d: %w", req.Qty, wmserr.ErrInvalidQuantity)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entity.InboundOrder
		if err := tx.Preload("Lines").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("inbound order %d: %w", orderID, wmserr.ErrNotFound)
			}
			return err
		}
		if !receivingFamily(order.Status) {
			return fmt.Errorf("inbound order %d in status %s: %w", orderID, order.Status, wmserr.ErrOrderNotReceiving)
		}

		var tare entity.Tare
		if err := tx.First(&tare, req.TareID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tare %d: %w", req.TareID, wmserr.ErrNotFound)
			}
			return err
		}
		if tare.WarehouseID != order.WarehouseID {
			return fmt.Errorf("tare %s belongs to warehouse %d, not %d: %w",
				tare.TareCode, tare.WarehouseID, order.WarehouseID, wmserr.ErrWarehouseMismatch)
		}
		if tare.Status == entity.TareStatusClosed {
			return fmt.Errorf("tare %s: %w", tare.TareCode, wmserr.ErrAlreadyClosed)
		}

		// resolve the target line: explicit id wins, then item match
		var line *entity.InboundOrderLine
		if req.LineID != nil {
			for i := range order.Lines {
				if order.Lines[i].ID == *req.LineID {
					line = &order.Lines[i]
					break
				}
			}
			if line == nil {
				return fmt.Errorf("line %d of inbound order %d: %w", *req.LineID, orderID, wmserr.ErrNotFound)
			}
		} else if req.ItemID != nil {
			for i := range order.Lines {
				if order.Lines[i].ItemID == *req.ItemID {
					line = &order.Lines[i]
					break
				}
			}
		}

		var itemID uint
		switch {
		case req.ItemID != nil:
			itemID = *req.ItemID
		case line != nil:
			itemID = line.ItemID
		default:
			return fmt.Errorf("receive without item or line: %w", wmserr.ErrNotFound)
		}

		var item entity.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item %d: %w", itemID, wmserr.ErrNotFound)
			}
			return err
		}

		if line == nil {
			// unplanned receipt: record it as a mis-sort line
			line = &entity.InboundOrderLine{
				InboundOrderID: order.ID,
				ItemID:         itemID,
				ExpectedQty:    0,
				ReceivedQty:    req.Qty,
				LineStatus:     entity.LineStatusMisSort,
			}
			if err := tx.Create(line).Error; err != nil {
				return err
			}
			order.Lines = append(order.Lines, *line)
		} else {
			line.ReceivedQty += req.Qty
			switch {
			// over-receipt outranks any supplied condition
			case line.ReceivedQty > line.ExpectedQty:
				line.LineStatus = entity.LineStatusOverReceived
			case req.Condition == entity.LineStatusMisSort:
				line.LineStatus = entity.LineStatusMisSort
			case line.LineStatus == entity.LineStatusMisSort:
				// stays mis-sorted until it over-receives
			case line.ReceivedQty == line.ExpectedQty:
				line.LineStatus = entity.LineStatusFullyReceived
			default:
				line.LineStatus = entity.LineStatusPartiallyReceived
			}
			if err := tx.Save(line).Error; err != nil {
				return err
			}
		}

		if err := upsertTareItem(tx, tare.ID, itemID, req.Qty); err != nil {
			return err
		}

		lineID := line.ID
		receipt := &entity.InboundReceipt{
			InboundOrderID: order.ID,
			LineID:         &lineID,
			TareID:         tare.ID,
			ItemID:         itemID,
			Quantity:       req.Qty,
			Condition:      req.Condition,
		}
		if err := tx.Create(receipt).Error; err != nil {
			return err
		}

		order.Status = deriveInboundStatus(order.Lines)
		return tx.Model(&entity.InboundOrder{}).Where("id = ?", order.ID).Update("status", order.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(orderID)
}

type InboundCloseTareRequest struct {
	TareID     uint `json:"tare_id" binding:"required"`
	LocationID uint `json:"location_id" binding:"required"`
}

// CloseTare finishes receiving into a tare: the tare is placed onto an
// inbound-zone location, its manifest is booked into inventory there, and the
// order status is re-derived. Receiving tares may only close into the inbound
// staging zone.
func (s *InboundService) CloseTare(ctx context.Context, orderID uint, req InboundCloseTareRequest) (*entity.InboundOrder, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entity.InboundOrder
		if err := tx.Preload("Lines").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("inbound order %d: %w", orderID, wmserr.ErrNotFound)
			}
			return err
		}
		// tares are still closable after counting finished, so received
		// passes the gate too
		if !receivingFamily(order.Status) && entity.NormalizeInboundStatus(order.Status) != entity.InboundStatusReceived {
			return fmt.Errorf("inbound order %d in status %s: %w", orderID, order.Status, wmserr.ErrOrderNotReceiving)
		}

		var tare entity.Tare
		if err := tx.Preload("Items").First(&tare, req.TareID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tare %d: %w", req.TareID, wmserr.ErrNotFound)
			}
			return err
		}
		if tare.WarehouseID != order.WarehouseID {
			return fmt.Errorf("tare %s belongs to warehouse %d, not %d: %w",
				tare.TareCode, tare.WarehouseID, order.WarehouseID, wmserr.ErrWarehouseMismatch)
		}
		if tare.Status == entity.TareStatusClosed {
			return fmt.Errorf("tare %s: %w", tare.TareCode, wmserr.ErrAlreadyClosed)
		}
		if tare.LocationID != nil {
			return fmt.Errorf("tare %s is at location %d: %w", tare.TareCode, *tare.LocationID, wmserr.ErrAlreadyPlaced)
		}

		var location entity.Location
		if err := tx.Preload("Zone").First(&location, req.LocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("location %d: %w", req.LocationID, wmserr.ErrNotFound)
			}
			return err
		}
		if location.WarehouseID != order.WarehouseID {
			return fmt.Errorf("location %d belongs to warehouse %d, not %d: %w",
				location.ID, location.WarehouseID, order.WarehouseID, wmserr.ErrLocationMismatch)
		}
		if location.Zone == nil || location.Zone.ZoneType != entity.ZoneTypeInbound {
			return fmt.Errorf("location %d: %w", location.ID, wmserr.ErrZoneNotInbound)
		}

		for _, ti := range tare.Items {
			if _, err := incrementInventory(tx, order.WarehouseID, req.LocationID, ti.ItemID, ti.Quantity, &tare.ID); err != nil {
				return err
			}
			if err := recordMovement(tx, order.WarehouseID, ti.ItemID, nil, &req.LocationID, ti.Quantity); err != nil {
				return err
			}
		}

		tare.LocationID = &req.LocationID
		tare.Status = entity.TareStatusClosed
		if err := tx.Save(&tare).Error; err != nil {
			return err
		}

		order.Status = deriveInboundStatus(order.Lines)
		return tx.Model(&entity.InboundOrder{}).Where("id = ?", order.ID).Update("status", order.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(orderID)
}
