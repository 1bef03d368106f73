package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/bukubiz/backend/internal/application/ledger"
	"github.com/bukubiz/backend/internal/domain/shared"
)

// LedgerHandler handles ledger HTTP requests: business detail, product
// catalog, and the transaction lifecycle.
type LedgerHandler struct {
	BaseHandler
	orchestrator *ledgerapp.LedgerOrchestrator
	queries      *ledgerapp.LedgerQueryService
	stockStatus  *ledgerapp.StockStatusService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(
	orchestrator *ledgerapp.LedgerOrchestrator,
	queries *ledgerapp.LedgerQueryService,
	stockStatus *ledgerapp.StockStatusService,
) *LedgerHandler {
	return &LedgerHandler{
		orchestrator: orchestrator,
		queries:      queries,
		stockStatus:  stockStatus,
	}
}

// RegisterRoutes registers ledger routes on the given router group
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	businesses := rg.Group("/businesses/:id")
	{
		businesses.GET("", h.GetBusiness)
		businesses.GET("/products", h.ListProducts)
		businesses.POST("/products/resync-status", h.ResyncProductStatuses)
		businesses.POST("/sales", h.RecordSale)
		businesses.POST("/purchases", h.RecordPurchase)
		businesses.POST("/transactions", h.CreateTransaction)
		businesses.GET("/transactions", h.ListTransactions)
		businesses.DELETE("/transactions/:transaction_id", h.DeleteTransaction)
	}

	transactions := rg.Group("/transactions/:id")
	{
		transactions.GET("", h.GetTransaction)
		transactions.PUT("", h.UpdateTransaction)
		transactions.POST("/cancel", h.CancelTransaction)
	}
}

// GetBusiness handles GET /businesses/:id
func (h *LedgerHandler) GetBusiness(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	business, err := h.queries.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, business)
}

// ListProducts handles GET /businesses/:id/products
func (h *LedgerHandler) ListProducts(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var filter ledgerapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	products, err := h.queries.ListProducts(c.Request.Context(), businessID, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, products)
}

// ResyncProductStatuses handles POST /businesses/:id/products/resync-status.
// It recomputes the stock status of every product and reports how many
// stored labels were corrected.
func (h *LedgerHandler) ResyncProductStatuses(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	corrected, err := h.stockStatus.BatchResync(c.Request.Context(), businessID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, gin.H{"corrected": corrected})
}

// RecordSale handles POST /businesses/:id/sales
func (h *LedgerHandler) RecordSale(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ledgerapp.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tx, err := h.orchestrator.RecordSale(c.Request.Context(), businessID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, tx)
}

// RecordPurchase handles POST /businesses/:id/purchases
func (h *LedgerHandler) RecordPurchase(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ledgerapp.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tx, err := h.orchestrator.RecordPurchase(c.Request.Context(), businessID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, tx)
}

// CreateTransaction handles POST /businesses/:id/transactions
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ledgerapp.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tx, err := h.orchestrator.CreateGeneralTransaction(c.Request.Context(), businessID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, tx)
}

// ListTransactions handles GET /businesses/:id/transactions
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var filter ledgerapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	transactions, total, err := h.queries.ListTransactions(c.Request.Context(), businessID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.SuccessWithMeta(c, transactions, total, filter.Page, filter.PageSize)
}

// GetTransaction handles GET /transactions/:id
func (h *LedgerHandler) GetTransaction(c *gin.Context) {
	transactionID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tx, err := h.queries.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, tx)
}

// UpdateTransaction handles PUT /transactions/:id
func (h *LedgerHandler) UpdateTransaction(c *gin.Context) {
	transactionID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ledgerapp.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tx, err := h.orchestrator.UpdateGeneralTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, tx)
}

// CancelTransaction handles POST /transactions/:id/cancel
func (h *LedgerHandler) CancelTransaction(c *gin.Context) {
	transactionID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tx, err := h.orchestrator.CancelTransaction(c.Request.Context(), transactionID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, tx)
}

// DeleteTransaction handles DELETE /businesses/:id/transactions/:transaction_id
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	businessID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	transactionID, ok := h.parseUUIDParam(c, "transaction_id")
	if !ok {
		return
	}

	if err := h.orchestrator.DeleteTransaction(c.Request.Context(), businessID, transactionID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
