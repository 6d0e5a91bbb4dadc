package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type PartnerHandler struct {
	svc *service.PartnerService
}

func NewPartnerHandler(svc *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

// List GET /partners?type=
func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.svc.List(repository.PartnerListParams{
		Type: c.Query("type"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": partners})
}

// Get GET /partners/:id
func (h *PartnerHandler) Get(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	partner, err := h.svc.Get(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, partner)
}

// GetByCode GET /partners/by-code/:code
func (h *PartnerHandler) GetByCode(c *gin.Context) {
	partner, err := h.svc.GetByCode(c.Param("code"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, partner)
}

// Create POST /partners
func (h *PartnerHandler) Create(c *gin.Context) {
	var req service.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	partner, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, partner)
}
