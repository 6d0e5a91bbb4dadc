package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// List GET /items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": items})
}

// Get GET /items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.Get(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, item)
}

// GetBySKU GET /items/by-sku/:sku
func (h *ItemHandler) GetBySKU(c *gin.Context) {
	item, err := h.svc.GetBySKU(c.Param("sku"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, item)
}

// Create POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, item)
}
