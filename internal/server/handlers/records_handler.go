package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
	"github.com/sarvasvaa/dairyops/internal/service/analytics"
	"github.com/sarvasvaa/dairyops/pkg/clients/dairyapi"
)

// RecordsHandler is the CRUD passthrough for the five backend resources.
// Every page owns its own refetched snapshot; nothing is cached here.
type RecordsHandler struct {
	api    *dairyapi.Client
	logger *zap.Logger
}

// NewRecordsHandler constructs the records HTTP adapter.
func NewRecordsHandler(api *dairyapi.Client, logger *zap.Logger) *RecordsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordsHandler{api: api, logger: logger}
}

func (h *RecordsHandler) upstreamError(c *gin.Context, action string, err error) {
	h.logger.Error("backend call failed", zap.String("action", action), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": action + " failed"})
}

// ListMilkCollections returns all milk collection records.
func (h *RecordsHandler) ListMilkCollections(c *gin.Context) {
	records, err := h.api.MilkCollections(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "fetch milk collections", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateMilkCollection records a new milk collection.
func (h *RecordsHandler) CreateMilkCollection(c *gin.Context) {
	var rec models.MilkCollection
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.CreateMilkCollection(c.Request.Context(), rec); err != nil {
		h.upstreamError(c, "create milk collection", err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateMilkCollection replaces a milk collection record.
func (h *RecordsHandler) UpdateMilkCollection(c *gin.Context) {
	var rec models.MilkCollection
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.UpdateMilkCollection(c.Request.Context(), c.Param("id"), rec); err != nil {
		h.upstreamError(c, "update milk collection", err)
		return
	}
	c.Status(http.StatusOK)
}

// ListProductions returns all production batches.
func (h *RecordsHandler) ListProductions(c *gin.Context) {
	records, err := h.api.Productions(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "fetch productions", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetProduction returns one production batch with details.
func (h *RecordsHandler) GetProduction(c *gin.Context) {
	record, err := h.api.Production(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.upstreamError(c, "fetch production", err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateProduction records a new production batch.
func (h *RecordsHandler) CreateProduction(c *gin.Context) {
	var rec models.Production
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.CreateProduction(c.Request.Context(), rec); err != nil {
		h.upstreamError(c, "create production", err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateProduction replaces a production batch.
func (h *RecordsHandler) UpdateProduction(c *gin.Context) {
	var rec models.Production
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.UpdateProduction(c.Request.Context(), c.Param("id"), rec); err != nil {
		h.upstreamError(c, "update production", err)
		return
	}
	c.Status(http.StatusOK)
}

// ListSales returns all sale records.
func (h *RecordsHandler) ListSales(c *gin.Context) {
	records, err := h.api.Sales(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "fetch sales", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateSale records a new sale.
func (h *RecordsHandler) CreateSale(c *gin.Context) {
	var rec models.Sale
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.CreateSale(c.Request.Context(), rec); err != nil {
		h.upstreamError(c, "create sale", err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateSale replaces a sale record.
func (h *RecordsHandler) UpdateSale(c *gin.Context) {
	var rec models.Sale
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.UpdateSale(c.Request.Context(), c.Param("id"), rec); err != nil {
		h.upstreamError(c, "update sale", err)
		return
	}
	c.Status(http.StatusOK)
}

// ListProducts returns the product catalog.
func (h *RecordsHandler) ListProducts(c *gin.Context) {
	records, err := h.api.Products(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "fetch products", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateProduct adds a catalog entry.
func (h *RecordsHandler) CreateProduct(c *gin.Context) {
	var rec models.Product
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.CreateProduct(c.Request.Context(), rec); err != nil {
		h.upstreamError(c, "create product", err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateProduct replaces a catalog entry.
func (h *RecordsHandler) UpdateProduct(c *gin.Context) {
	var rec models.Product
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.UpdateProduct(c.Request.Context(), c.Param("id"), rec); err != nil {
		h.upstreamError(c, "update product", err)
		return
	}
	c.Status(http.StatusOK)
}

// ListStocks returns stock levels enriched against the product catalog.
// Stocks and products are fetched concurrently; a failed product lookup
// degrades to placeholder names rather than failing the listing.
func (h *RecordsHandler) ListStocks(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg       sync.WaitGroup
		stocks   []models.Stock
		products []models.Product
		stockErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		stocks, stockErr = h.api.Stocks(ctx)
	}()
	go func() {
		defer wg.Done()
		var err error
		products, err = h.api.Products(ctx)
		if err != nil {
			h.logger.Warn("product lookup for stocks failed", zap.Error(err))
		}
	}()
	wg.Wait()

	if stockErr != nil {
		h.upstreamError(c, "fetch stocks", stockErr)
		return
	}

	c.JSON(http.StatusOK, analytics.EnrichStocks(stocks, products))
}

// AddStock posts a manual stock adjustment.
func (h *RecordsHandler) AddStock(c *gin.Context) {
	var rec models.Stock
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.api.AddStock(c.Request.Context(), rec); err != nil {
		h.upstreamError(c, "add stock", err)
		return
	}
	c.Status(http.StatusCreated)
}

// DeleteRecord removes one record from the resource named in the route.
func (h *RecordsHandler) DeleteRecord(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.api.Delete(c.Request.Context(), resource, c.Param("id")); err != nil {
			h.upstreamError(c, "delete "+resource, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
