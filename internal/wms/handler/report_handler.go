package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// StockSummary GET /reports/stock-summary
func (h *ReportHandler) StockSummary(c *gin.Context) {
	rows, err := h.svc.StockSummary()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": rows})
}

// Turnover GET /reports/turnover?start=&end= (RFC 3339 timestamps)
func (h *ReportHandler) Turnover(c *gin.Context) {
	var start, end *time.Time
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			BadRequest(c, "invalid start: "+err.Error())
			return
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			BadRequest(c, "invalid end: "+err.Error())
			return
		}
		end = &t
	}
	rows, err := h.svc.Turnover(start, end)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": rows})
}

// Movements GET /movements?warehouse_id=&item_id=
func (h *ReportHandler) Movements(c *gin.Context) {
	rows, err := h.svc.Movements(repository.MovementListParams{
		WarehouseID: QueryUint(c, "warehouse_id"),
		ItemID:      QueryUint(c, "item_id"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": rows})
}
