package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List GET /inventory?warehouse_id=&location_id=&item_id=
func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.svc.List(repository.InventoryListParams{
		WarehouseID: QueryUint(c, "warehouse_id"),
		LocationID:  QueryUint(c, "location_id"),
		ItemID:      QueryUint(c, "item_id"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": rows})
}

// Inbound POST /inventory/inbound
func (h *InventoryHandler) Inbound(c *gin.Context) {
	var req service.InventoryInboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	inv, err := h.svc.Inbound(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, inv)
}

// Move POST /inventory/move
func (h *InventoryHandler) Move(c *gin.Context) {
	var req service.InventoryMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.Move(c.Request.Context(), req); err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, nil)
}
