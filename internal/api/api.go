// Package api exposes the farm platform's core operations over HTTP. It is
// the presentation boundary: every request is computed synchronously from
// the library packages and returned, with no background state of its own.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"greenchain/internal/catalog"
	"greenchain/internal/farm"
	"greenchain/internal/ledger"
	"greenchain/internal/logistics"
	"greenchain/internal/monitoring"
	"greenchain/internal/session"
	"greenchain/internal/trace"
)

// FarmAPI represents the main API handler for the platform
type FarmAPI struct {
	Router *gin.Engine

	// Clock supplies evaluation time; overridable in tests.
	Clock func() time.Time

	generator *farm.Generator
	catalog   *catalog.Catalog
	sessions  *session.Registry
	auth      *session.Authenticator
	tracer    *trace.Service
	monitor   *monitoring.Monitor
	collector *monitoring.Collector

	streamInterval time.Duration
}

// NewFarmAPI creates an API instance wired to the given collaborators.
func NewFarmAPI(generator *farm.Generator, cat *catalog.Catalog, sessions *session.Registry, auth *session.Authenticator, tracer *trace.Service, monitor *monitoring.Monitor, collector *monitoring.Collector, streamInterval time.Duration) *FarmAPI {
	api := &FarmAPI{
		Router:         gin.Default(),
		Clock:          time.Now,
		generator:      generator,
		catalog:        cat,
		sessions:       sessions,
		auth:           auth,
		tracer:         tracer,
		monitor:        monitor,
		collector:      collector,
		streamInterval: streamInterval,
	}

	api.setupRoutes()
	return api
}

// setupRoutes configures all API endpoints
func (f *FarmAPI) setupRoutes() {
	// Health check
	f.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "GreenChain API is running"})
	})

	f.Router.POST("/login", f.Login)
	f.Router.GET("/ws/telemetry", f.handleTelemetryStream)

	v1 := f.Router.Group("/api/v1")
	v1.Use(f.auth.Middleware())
	{
		// Farm monitoring
		v1.GET("/telemetry", f.GetTelemetry)
		v1.GET("/monitor", f.GetMonitorMetrics)

		// Storefront
		v1.GET("/catalog", f.GetCatalog)
		v1.GET("/trace/:product", f.GetTrace)
		v1.POST("/nutrition", f.GetNutritionPlan)

		// Cart
		v1.POST("/cart/items", f.AddCartItem)
		v1.GET("/cart", f.GetCart)
		v1.DELETE("/cart", f.ClearCart)

		// Orders
		v1.POST("/orders", f.CreateOrder)
		v1.GET("/orders", f.ListOrders)
		v1.GET("/orders/:id/track", f.TrackOrder)
	}
}

// sessionLedger returns the calling session's ledger.
func (f *FarmAPI) sessionLedger(c *gin.Context) *ledger.Ledger {
	return f.sessions.Ledger(c.GetString(session.ContextUserKey))
}

// Login issues a session token for a demo account.
func (f *FarmAPI) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := f.auth.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetTelemetry returns a fresh 24-hour telemetry series and the derived
// irrigation state for its latest reading.
func (f *FarmAPI) GetTelemetry(c *gin.Context) {
	now := f.Clock()
	series := f.generator.Series(now)
	latest := series.Latest()
	status := farm.Decide(latest.SoilMoisture)

	f.monitor.RecordReading(latest)
	f.collector.RecordReading(latest)
	f.collector.RecordIrrigation(status)

	c.JSON(http.StatusOK, gin.H{
		"series": series,
		"irrigation": gin.H{
			"status":         status,
			"last_irrigated": f.generator.LastIrrigated(now),
		},
	})
}

// GetMonitorMetrics returns the dashboard metric snapshot.
func (f *FarmAPI) GetMonitorMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, f.monitor.GetMetrics())
}

// GetCatalog returns the product range.
func (f *FarmAPI) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, f.catalog.List())
}

// GetTrace runs a simulated provenance lookup for a catalog product.
func (f *FarmAPI) GetTrace(c *gin.Context) {
	product, ok := f.catalog.Lookup(c.Param("product"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	record, err := f.tracer.Provenance(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetNutritionPlan returns a simulated nutrition recommendation.
func (f *FarmAPI) GetNutritionPlan(c *gin.Context) {
	var req struct {
		Goal string `json:"goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := f.tracer.NutritionPlan(c.Request.Context(), req.Goal)
	if err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// AddCartItem appends a line to the session cart.
func (f *FarmAPI) AddCartItem(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := f.catalog.Lookup(req.Name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	item, err := f.sessionLedger(c).AddItem(product.Name, product.UnitPrice, req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetCart returns the session cart and its total.
func (f *FarmAPI) GetCart(c *gin.Context) {
	l := f.sessionLedger(c)
	c.JSON(http.StatusOK, gin.H{
		"items": l.Items(),
		"total": l.Total(),
	})
}

// ClearCart empties the session cart.
func (f *FarmAPI) ClearCart(c *gin.Context) {
	f.sessionLedger(c).Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// CreateOrder validates shipping info, runs the simulated submission delay
// and appends the order to the session ledger.
func (f *FarmAPI) CreateOrder(c *gin.Context) {
	var req struct {
		ItemName string `json:"item_name" binding:"required"`
		Quantity int    `json:"quantity"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := f.catalog.Lookup(req.ItemName)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := f.tracer.ConfirmSubmission(c.Request.Context()); err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}

	id, err := f.sessionLedger(c).CreateOrder(product.Name, req.Quantity, product.UnitPrice, req.Address, req.Phone, f.Clock(), product.DeliveryHours)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ledger.ErrIncompleteShippingInfo) || errors.Is(err, ledger.ErrInvalidQuantity) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	f.collector.RecordOrderCreated()
	c.JSON(http.StatusCreated, gin.H{
		"id":                       id,
		"estimated_delivery_hours": product.DeliveryHours,
	})
}

// ListOrders returns the session's orders in creation order.
func (f *FarmAPI) ListOrders(c *gin.Context) {
	var orders []any
	for order := range f.sessionLedger(c).Orders() {
		orders = append(orders, order)
	}
	if orders == nil {
		orders = []any{}
	}
	c.JSON(http.StatusOK, orders)
}

// TrackOrder derives the fulfillment state of an order from elapsed time.
func (f *FarmAPI) TrackOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, ok := f.sessionLedger(c).Order(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	eval := logistics.Evaluate(order.CreatedAt, f.Clock())
	f.collector.RecordStageEvaluation(eval.Stage)

	c.JSON(http.StatusOK, gin.H{
		"order":      order,
		"evaluation": eval,
	})
}
