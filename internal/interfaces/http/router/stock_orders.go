package router

import (
	"github.com/erp/stockflow/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// StockOrderRoutes maps the stock order API onto /stock-orders.
// requireActor guards every mutating route.
func StockOrderRoutes(h *handler.StockOrderHandler, requireActor gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("stock-orders", "/stock-orders")

	g.POST("/shipment", requireActor, h.CreateShipment)
	g.POST("/return", requireActor, h.CreateReturn)
	g.POST("/adjustment", requireActor, h.CreateAdjustment)
	g.POST("/:id/transition/:next_status", requireActor, h.Transition)
	g.POST("/:id/notes", requireActor, h.AppendNote)

	g.GET("", h.List)
	g.GET("/pending-summary", h.PendingSummary)
	g.GET("/linkable-orders", h.SearchLinkableOrders)
	g.GET("/:id", h.Get)
	g.GET("/:id/movements", h.ListMovements)
	g.GET("/:id/allowed-transitions", h.AllowedTransitions)
	return g
}
