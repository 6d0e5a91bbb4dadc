package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type PickingHandler struct {
	svc *service.PickingService
}

func NewPickingHandler(svc *service.PickingService) *PickingHandler {
	return &PickingHandler{svc: svc}
}

// List GET /picking-tasks?warehouse_id=&outbound_order_id=&status=
func (h *PickingHandler) List(c *gin.Context) {
	tasks, err := h.svc.List(repository.PickingListParams{
		WarehouseID:     QueryUint(c, "warehouse_id"),
		OutboundOrderID: QueryUint(c, "outbound_order_id"),
		Status:          c.Query("status"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": tasks})
}

// Get GET /picking-tasks/:id
func (h *PickingHandler) Get(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	task, err := h.svc.Get(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, task)
}

type generatePickingRequest struct {
	OutboundOrderID uint `json:"outbound_order_id" binding:"required"`
}

// Generate POST /picking-tasks/generate
func (h *PickingHandler) Generate(c *gin.Context) {
	var req generatePickingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	task, err := h.svc.Generate(c.Request.Context(), req.OutboundOrderID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, task)
}

// CompleteLine POST /picking-tasks/:id/lines/:lineId/complete
func (h *PickingHandler) CompleteLine(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	lineID, ok := ParamUint(c, "lineId")
	if !ok {
		return
	}
	var req service.CompletePickLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	task, err := h.svc.CompleteLine(c.Request.Context(), id, lineID, req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, task)
}
