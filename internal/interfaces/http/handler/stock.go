package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	appinventory "github.com/stocktrack/backend/internal/application/inventory"
	"github.com/stocktrack/backend/internal/interfaces/http/router"
)

// StockHandler serves the stock ledger endpoints
type StockHandler struct {
	*BaseHandler
	ledger *appinventory.LedgerService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(ledger *appinventory.LedgerService) *StockHandler {
	return &StockHandler{
		BaseHandler: NewBaseHandler(),
		ledger:      ledger,
	}
}

// Routes returns the route group for stock transactions
func (h *StockHandler) Routes() *router.DomainGroup {
	g := router.NewDomainGroup("stock", "/transactions")
	g.GET("", h.ListAll)
	g.POST("", h.Apply)
	g.GET("/item/:id", h.ListForItem)
	return g
}

type applyTransactionRequest struct {
	ItemID      int64  `json:"item_id" binding:"required,gt=0"`
	Kind        string `json:"kind" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	Notes       string `json:"notes" binding:"max=2000"`
	PerformedBy string `json:"performed_by" binding:"required,max=200"`
}

// Apply applies one stock transaction to an item
func (h *StockHandler) Apply(c *gin.Context) {
	var req applyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.ledger.Apply(c.Request.Context(), appinventory.ApplyTransactionInput{
		ItemID:      req.ItemID,
		Kind:        req.Kind,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListAll returns recent transactions across all items, newest first
func (h *StockHandler) ListAll(c *gin.Context) {
	resp, err := h.ledger.ListAllTransactions(c.Request.Context(), h.limit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListForItem returns one item's transaction history, newest first
func (h *StockHandler) ListForItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	resp, err := h.ledger.ListItemTransactions(c.Request.Context(), id, h.limit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// limit parses the optional ?limit query; the service clamps the range
func (h *StockHandler) limit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}
