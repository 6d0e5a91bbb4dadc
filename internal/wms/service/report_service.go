package service

import (
	"time"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
)

type ReportService struct {
	inventoryRepo *repository.InventoryRepository
	movementRepo  *repository.MovementRepository
}

func NewReportService(inventoryRepo *repository.InventoryRepository, movementRepo *repository.MovementRepository) *ReportService {
	return &ReportService{inventoryRepo: inventoryRepo, movementRepo: movementRepo}
}

// StockSummary returns on-hand quantity per warehouse and item, summed over
// locations.
func (s *ReportService) StockSummary() ([]repository.InventorySummaryRow, error) {
	return s.inventoryRepo.Summary()
}

// Turnover returns per-item inbound and outbound totals derived from the
// movement journal, optionally bounded by a time window.
func (s *ReportService) Turnover(start, end *time.Time) ([]repository.TurnoverRow, error) {
	return s.movementRepo.Turnover(start, end)
}

func (s *ReportService) Movements(params repository.MovementListParams) ([]entity.Movement, error) {
	return s.movementRepo.List(params)
}
