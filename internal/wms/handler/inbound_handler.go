package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type InboundHandler struct {
	svc *service.InboundService
}

func NewInboundHandler(svc *service.InboundService) *InboundHandler {
	return &InboundHandler{svc: svc}
}

// List GET /inbound-orders?warehouse_id=&status=&partner_id=&external_number=
func (h *InboundHandler) List(c *gin.Context) {
	orders, err := h.svc.List(repository.InboundListParams{
		WarehouseID:    QueryUint(c, "warehouse_id"),
		Status:         c.Query("status"),
		PartnerID:      QueryUint(c, "partner_id"),
		ExternalNumber: c.Query("external_number"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": orders})
}

// Get GET /inbound-orders/:id
func (h *InboundHandler) Get(c *gin.Context) {
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

// Create POST /inbound-orders
func (h *InboundHandler) Create(c *gin.Context) {
	var req service.CreateInboundOrderRequest
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

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus PUT /inbound-orders/:id/status
func (h *InboundHandler) UpdateStatus(c *gin.Context) {
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

// Receive POST /inbound-orders/:id/receive
func (h *InboundHandler) Receive(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req service.InboundReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	order, err := h.svc.Receive(c.Request.Context(), id, req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}

// CloseTare POST /inbound-orders/:id/close-tare
func (h *InboundHandler) CloseTare(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req service.InboundCloseTareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	order, err := h.svc.CloseTare(c.Request.Context(), id, req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}
