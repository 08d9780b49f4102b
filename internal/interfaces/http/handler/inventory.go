package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	appinventory "github.com/stocktrack/backend/internal/application/inventory"
	"github.com/stocktrack/backend/internal/interfaces/http/router"
)

// InventoryHandler serves the item directory endpoints
type InventoryHandler struct {
	*BaseHandler
	items *appinventory.ItemService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(items *appinventory.ItemService) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: NewBaseHandler(),
		items:       items,
	}
}

// Routes returns the route group for inventory items
func (h *InventoryHandler) Routes() *router.DomainGroup {
	g := router.NewDomainGroup("inventory", "/items")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/categories", h.Categories)
	g.GET("/low-stock", h.LowStock)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return g
}

type createItemRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	SKU          string          `json:"sku" binding:"required,max=64"`
	Category     string          `json:"category" binding:"required,max=100"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	Quantity     int             `json:"quantity" binding:"gte=0"`
	MinimumStock int             `json:"minimum_stock" binding:"gte=0"`
	Description  string          `json:"description" binding:"max=2000"`
	Location     string          `json:"location" binding:"max=200"`
}

type updateItemRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Category     string          `json:"category" binding:"required,max=100"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	MinimumStock int             `json:"minimum_stock" binding:"gte=0"`
	Description  string          `json:"description" binding:"max=2000"`
	Location     string          `json:"location" binding:"max=200"`
}

// Create creates a new inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.items.CreateItem(c.Request.Context(), appinventory.CreateItemInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		Description:  req.Description,
		Location:     req.Location,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns one item with its recent history
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	resp, err := h.items.GetItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns items matching the query filters
func (h *InventoryHandler) List(c *gin.Context) {
	input := appinventory.ListItemsInput{
		Category:     c.Query("category"),
		LowStockOnly: c.Query("low_stock") == "true",
		Search:       c.Query("search"),
	}

	resp, err := h.items.ListItems(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update replaces the descriptive fields of an item
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.items.UpdateItem(c.Request.Context(), id, appinventory.UpdateItemInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		UnitPrice:    req.UnitPrice,
		MinimumStock: req.MinimumStock,
		Location:     req.Location,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes an item and its transaction history
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.items.DeleteItem(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Categories returns the distinct item categories
func (h *InventoryHandler) Categories(c *gin.Context) {
	categories, err := h.items.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// LowStock returns items at or below their minimum stock
func (h *InventoryHandler) LowStock(c *gin.Context) {
	resp, err := h.items.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// itemID parses the :id path parameter, responding 400 on garbage
func (h *InventoryHandler) itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "Invalid item ID")
		return 0, false
	}
	return id, true
}
