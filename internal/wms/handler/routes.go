package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the WMS API under /api/v1.
func RegisterRoutes(r gin.IRouter, h *Handlers) {
	v1 := r.Group("/api/v1")

	warehouses := v1.Group("/warehouses")
	{
		warehouses.GET("", h.Topology.ListWarehouses)
		warehouses.POST("", h.Topology.CreateWarehouse)
		warehouses.GET("/by-code/:code", h.Topology.GetWarehouseByCode)
		warehouses.GET("/:id", h.Topology.GetWarehouse)
		warehouses.GET("/:id/zones", h.Topology.ListZones)
		warehouses.POST("/:id/zones", h.Topology.CreateZone)
	}

	locations := v1.Group("/locations")
	{
		locations.GET("", h.Topology.ListLocations)
		locations.POST("", h.Topology.CreateLocation)
		locations.GET("/:id", h.Topology.GetLocation)
	}

	items := v1.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/by-sku/:sku", h.Item.GetBySKU)
		items.GET("/:id", h.Item.Get)
	}

	partners := v1.Group("/partners")
	{
		partners.GET("", h.Partner.List)
		partners.POST("", h.Partner.Create)
		partners.GET("/by-code/:code", h.Partner.GetByCode)
		partners.GET("/:id", h.Partner.Get)
	}

	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("/inbound", h.Inventory.Inbound)
		inventory.POST("/move", h.Inventory.Move)
	}

	tareTypes := v1.Group("/tare-types")
	{
		tareTypes.GET("", h.Tare.ListTypes)
		tareTypes.POST("", h.Tare.CreateType)
	}

	tares := v1.Group("/tares")
	{
		tares.GET("", h.Tare.List)
		tares.POST("", h.Tare.Create)
		tares.GET("/:id", h.Tare.Get)
		tares.GET("/:id/items", h.Tare.ListItems)
		tares.POST("/:id/items", h.Tare.AddItem)
		tares.POST("/:id/close", h.Tare.Close)
		tares.POST("/:id/move", h.Tare.Move)
		tares.POST("/:id/put-away", h.Tare.PutAway)
	}

	inbound := v1.Group("/inbound-orders")
	{
		inbound.GET("", h.Inbound.List)
		inbound.POST("", h.Inbound.Create)
		inbound.GET("/:id", h.Inbound.Get)
		inbound.PUT("/:id/status", h.Inbound.UpdateStatus)
		inbound.POST("/:id/receive", h.Inbound.Receive)
		inbound.POST("/:id/close-tare", h.Inbound.CloseTare)
	}

	outbound := v1.Group("/outbound-orders")
	{
		outbound.GET("", h.Outbound.List)
		outbound.POST("", h.Outbound.Create)
		outbound.GET("/:id", h.Outbound.Get)
		outbound.PUT("/:id/status", h.Outbound.UpdateStatus)
	}

	picking := v1.Group("/picking-tasks")
	{
		picking.GET("", h.Picking.List)
		picking.POST("/generate", h.Picking.Generate)
		picking.GET("/:id", h.Picking.Get)
		picking.POST("/:id/lines/:lineId/complete", h.Picking.CompleteLine)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/stock-summary", h.Report.StockSummary)
		reports.GET("/turnover", h.Report.Turnover)
	}

	v1.GET("/movements", h.Report.Movements)
}
