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

type PickingService struct {
	db           *gorm.DB
	repo         *repository.PickingRepository
	outboundRepo *repository.OutboundOrderRepository
}

func NewPickingService(db *gorm.DB, repo *repository.PickingRepository, outboundRepo *repository.OutboundOrderRepository) *PickingService {
	return &PickingService{db: db, repo: repo, outboundRepo: outboundRepo}
}

func (s *PickingService) List(params repository.PickingListParams) ([]entity.PickingTask, error) {
	return s.repo.List(params)
}

func (s *PickingService) Get(id uint) (*entity.PickingTask, error) {
	task, err := s.repo.GetWithLines(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("picking task %d: %w", id, wmserr.ErrNotFound)
	}
	return task, err
}

// Generate builds a picking task for an outbound order by allocating
// on-hand stock to whatever its lines still need (ordered minus already
// picked), so a follow-up task can be generated after a partial pick.
// Allocation walks inventory rows per item ordered by location id, so
// repeated runs against the same stock are deterministic. Everything still
// needed must be coverable or nothing is allocated.
func (s *PickingService) Generate(ctx context.Context, outboundOrderID uint) (*entity.PickingTask, error) {
	var taskID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entity.OutboundOrder
		if err := tx.Preload("Lines").First(&order, outboundOrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("outbound order %d: %w", outboundOrderID, wmserr.ErrNotFound)
			}
			return err
		}
		if order.Status == entity.OutboundStatusShipped || order.Status == entity.OutboundStatusCancelled {
			return fmt.Errorf("outbound order %d in status %s: %w", outboundOrderID, order.Status, wmserr.ErrInvalidTransition)
		}
		if len(order.Lines) == 0 {
			return fmt.Errorf("outbound order %d: %w", outboundOrderID, wmserr.ErrEmptyOrder)
		}

		task := &entity.PickingTask{
			WarehouseID:     order.WarehouseID,
			OutboundOrderID: order.ID,
			Status:          entity.PickingStatusNew,
		}

		for _, line := range order.Lines {
			remaining := line.OrderedQty - line.PickedQty
			if remaining <= 0 {
				continue
			}

			var rows []entity.Inventory
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("warehouse_id = ? AND item_id = ? AND quantity > 0", order.WarehouseID, line.ItemID).
				Order("location_id ASC").
				Find(&rows).Error; err != nil {
				return err
			}

			for _, row := range rows {
				if remaining == 0 {
					break
				}
				take := row.Quantity
				if take > remaining {
					take = remaining
				}
				locID := row.LocationID
				task.Lines = append(task.Lines, entity.PickingTaskLine{
					ItemID:         line.ItemID,
					FromLocationID: &locID,
					QtyToPick:      take,
				})
				remaining -= take
			}
			if remaining > 0 {
				return fmt.Errorf("item %d: need %d more: %w", line.ItemID, remaining, wmserr.ErrInsufficientStock)
			}
		}

		if len(task.Lines) == 0 {
			return fmt.Errorf("outbound order %d already fully picked: %w", outboundOrderID, wmserr.ErrEmptyOrder)
		}

		if err := tx.Create(task).Error; err != nil {
			return err
		}
		if order.Status == entity.OutboundStatusDraft {
			if err := tx.Model(&entity.OutboundOrder{}).Where("id = ?", order.ID).
				Update("status", entity.OutboundStatusPicking).Error; err != nil {
				return err
			}
		}
		taskID = task.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(taskID)
}

type CompletePickLineRequest struct {
	Qty int `json:"qty" binding:"required,gt=0"`
}

// CompleteLine confirms qty picked on a task line: stock leaves the source
// location, the task line and the order line advance, and the task flips to
// done when every line is fully picked.
func (s *PickingService) CompleteLine(ctx context.Context, taskID, lineID uint, req CompletePickLineRequest) (*entity.PickingTask, error) {
	if req.Qty <= 0 {
		return nil, fmt.Errorf("pick of %d: %w", req.Qty, wmserr.ErrInvalidQuantity)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task entity.PickingTask
		if err := tx.Preload("Lines").First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("picking task %d: %w", taskID, wmserr.ErrNotFound)
			}
			return err
		}
		if task.Status == entity.PickingStatusDone {
			return fmt.Errorf("picking task %d: %w", taskID, wmserr.ErrInvalidTransition)
		}

		var line *entity.PickingTaskLine
		for i := range task.Lines {
			if task.Lines[i].ID == lineID {
				line = &task.Lines[i]
				break
			}
		}
		if line == nil {
			return fmt.Errorf("line %d of picking task %d: %w", lineID, taskID, wmserr.ErrNotFound)
		}
		if line.QtyPicked+req.Qty > line.QtyToPick {
			return fmt.Errorf("line %d: picked %d + %d exceeds %d: %w",
				lineID, line.QtyPicked, req.Qty, line.QtyToPick, wmserr.ErrExceedsRequired)
		}
		if line.FromLocationID == nil {
			return fmt.Errorf("line %d has no source location: %w", lineID, wmserr.ErrInvalidMove)
		}

		var orderLine entity.OutboundOrderLine
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("outbound_order_id = ? AND item_id = ?", task.OutboundOrderID, line.ItemID).
			First(&orderLine).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order line for item %d: %w", line.ItemID, wmserr.ErrNotFound)
			}
			return err
		}
		if orderLine.PickedQty+req.Qty > orderLine.OrderedQty {
			return fmt.Errorf("item %d: picked %d + %d exceeds ordered %d: %w",
				line.ItemID, orderLine.PickedQty, req.Qty, orderLine.OrderedQty, wmserr.ErrExceedsOrdered)
		}

		if err := decrementInventory(tx, task.WarehouseID, *line.FromLocationID, line.ItemID, req.Qty); err != nil {
			return err
		}
		if err := recordMovement(tx, task.WarehouseID, line.ItemID, line.FromLocationID, nil, req.Qty); err != nil {
			return err
		}

		line.QtyPicked += req.Qty
		if err := tx.Save(line).Error; err != nil {
			return err
		}
		orderLine.PickedQty += req.Qty
		if err := tx.Save(&orderLine).Error; err != nil {
			return err
		}

		allDone := true
		for _, l := range task.Lines {
			if l.QtyPicked < l.QtyToPick {
				allDone = false
				break
			}
		}
		status := entity.PickingStatusInProgress
		if allDone {
			status = entity.PickingStatusDone
		}
		if task.Status != status {
			if err := tx.Model(&entity.PickingTask{}).Where("id = ?", task.ID).
				Update("status", status).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(taskID)
}
