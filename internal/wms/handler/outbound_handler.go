package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type OutboundHandler struct {
	svc *service.OutboundService
}

func NewOutboundHandler(svc *service.OutboundService) *OutboundHandler {
	return &OutboundHandler{svc: svc}
}

// List GET /outbound-orders?warehouse_id=&status=&partner_id=
func (h *OutboundHandler) List(c *gin.Context) {
	orders, err := h.svc.List(repository.OutboundListParams{
		WarehouseID: QueryUint(c, "warehouse_id"),
		Status:      c.Query("status"),
		PartnerID:   QueryUint(c, "partner_id"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": orders})
}

// Get GET /outbound-orders/:id
func (h *OutboundHandler) Get(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	order, err := h.svc.Get(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}

// Create POST /outbound-orders
func (h *OutboundHandler) Create(c *gin.Context) {
	var req service.CreateOutboundOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	order, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, order)
}

// UpdateStatus PUT /outbound-orders/:id/status
func (h *OutboundHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	order, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}
