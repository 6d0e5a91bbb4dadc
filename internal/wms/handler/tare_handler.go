package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type TareHandler struct {
	svc *service.TareService
}

func NewTareHandler(svc *service.TareService) *TareHandler {
	return &TareHandler{svc: svc}
}

// ListTypes GET /tare-types
func (h *TareHandler) ListTypes(c *gin.Context) {
	types, err := h.svc.ListTypes()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": types})
}

// CreateType POST /tare-types
func (h *TareHandler) CreateType(c *gin.Context) {
	var req service.CreateTareTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	tareType, err := h.svc.CreateType(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, tareType)
}

// List GET /tares?warehouse_id=&location_id=&status=
func (h *TareHandler) List(c *gin.Context) {
	tares, err := h.svc.List(repository.TareListParams{
		WarehouseID: QueryUint(c, "warehouse_id"),
		LocationID:  QueryUint(c, "location_id"),
		Status:      c.Query("status"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": tares})
}

// Get GET /tares/:id
func (h *TareHandler) Get(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	tare, err := h.svc.Get(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, tare)
}

// ListItems GET /tares/:id/items
func (h *TareHandler) ListItems(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	items, err := h.svc.ListItems(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}

// Create POST /tares
func (h *TareHandler) Create(c *gin.Context) {
	var req service.CreateTareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	tare, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, tare)
}

// AddItem POST /tares/:id/items
func (h *TareHandler) AddItem(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req service.AddTareItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.AddItem(c.Request.Context(), id, req); err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, nil)
}

type closeTareRequest struct {
	LocationID uint `json:"location_id" binding:"required"`
}

// Close POST /tares/:id/close
func (h *TareHandler) Close(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req closeTareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	tare, err := h.svc.Close(c.Request.Context(), id, req.LocationID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, tare)
}

type moveTareRequest struct {
	LocationID uint     `json:"location_id" binding:"required"`
	FromZones  []string `json:"from_zones"`
	ToZones    []string `json:"to_zones"`
}

// Move POST /tares/:id/move
func (h *TareHandler) Move(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req moveTareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	tare, err := h.svc.Move(c.Request.Context(), id, req.LocationID, req.FromZones, req.ToZones)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, tare)
}

type putAwayRequest struct {
	LocationID uint `json:"location_id" binding:"required"`
}

// PutAway POST /tares/:id/put-away
func (h *TareHandler) PutAway(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req putAwayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	tare, err := h.svc.PutAway(c.Request.Context(), id, req.LocationID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, tare)
}
