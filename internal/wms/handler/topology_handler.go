package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/service"
)

type TopologyHandler struct {
	svc *service.TopologyService
}

func NewTopologyHandler(svc *service.TopologyService) *TopologyHandler {
	return &TopologyHandler{svc: svc}
}

// ListWarehouses GET /warehouses
func (h *TopologyHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.svc.ListWarehouses()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": warehouses})
}

// GetWarehouse GET /warehouses/:id
func (h *TopologyHandler) GetWarehouse(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	wh, err := h.svc.GetWarehouse(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, wh)
}

// GetWarehouseByCode GET /warehouses/by-code/:code
func (h *TopologyHandler) GetWarehouseByCode(c *gin.Context) {
	wh, err := h.svc.GetWarehouseByCode(c.Param("code"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, wh)
}

// CreateWarehouse POST /warehouses
func (h *TopologyHandler) CreateWarehouse(c *gin.Context) {
	var req service.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	wh, err := h.svc.CreateWarehouse(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, wh)
}

// ListZones GET /warehouses/:id/zones
func (h *TopologyHandler) ListZones(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	zones, err := h.svc.ListZones(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": zones})
}

// CreateZone POST /warehouses/:id/zones
func (h *TopologyHandler) CreateZone(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	var req service.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	zone, err := h.svc.CreateZone(c.Request.Context(), id, req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, zone)
}

// ListLocations GET /locations?warehouse_id=&zone_id=
func (h *TopologyHandler) ListLocations(c *gin.Context) {
	locations, err := h.svc.ListLocations(repository.LocationListParams{
		WarehouseID: QueryUint(c, "warehouse_id"),
		ZoneID:      QueryUint(c, "zone_id"),
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": locations})
}

// GetLocation GET /locations/:id
func (h *TopologyHandler) GetLocation(c *gin.Context) {
	id, ok := ParamUint(c, "id")
	if !ok {
		return
	}
	loc, err := h.svc.GetLocation(id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, loc)
}

// CreateLocation POST /locations
func (h *TopologyHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	loc, err := h.svc.CreateLocation(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, loc)
}
