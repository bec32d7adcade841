package analytics

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

// LowStockThreshold marks a stock level as low. Hand-coded policy constant,
// not configurable.
const LowStockThreshold = 20

// Fetcher is the slice of the backend client the dashboard needs.
type Fetcher interface {
	MilkCollections(ctx context.Context) ([]models.MilkCollection, error)
	Productions(ctx context.Context) ([]models.Production, error)
	Sales(ctx context.Context) ([]models.Sale, error)
	Stocks(ctx context.Context) ([]models.Stock, error)
	Products(ctx context.Context) ([]models.Product, error)
}

// ProductionLine is one flattened produced item for the recent-activity table.
type ProductionLine struct {
	Date     string `json:"date"`
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
}

// SaleLine is one sale for the recent-activity table.
type SaleLine struct {
	Date     string          `json:"date"`
	Customer string          `json:"customer"`
	Total    decimal.Decimal `json:"total"`
}

// Dashboard is the snapshot backing the console's landing view.
type Dashboard struct {
	TotalMilkLtr      float64                `json:"total_milk_ltr"`
	TotalSales        decimal.Decimal        `json:"total_sales"`
	ProductionCount   int                    `json:"production_count"`
	StockOnHand       float64                `json:"stock_on_hand"`
	Stocks            []models.EnrichedStock `json:"stocks"`
	RecentProductions []ProductionLine       `json:"recent_productions"`
	RecentSales       []SaleLine             `json:"recent_sales"`
}

// DashboardService assembles dashboard snapshots from the backend.
type DashboardService struct {
	api    Fetcher
	logger *zap.Logger
}

// NewDashboardService wires a dashboard service instance.
func NewDashboardService(api Fetcher, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{api: api, logger: logger}
}

// Snapshot fetches all five record sets concurrently and aggregates them.
// Each fetch failure is logged and degrades to an empty slice so that
// partial data never blocks the rest of the view.
func (s *DashboardService) Snapshot(ctx context.Context) *Dashboard {
	var (
		collections []models.MilkCollection
		productions []models.Production
		sales       []models.Sale
		stocks      []models.Stock
		products    []models.Product
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		collections = fetch(ctx, s.logger, "milk-collections", s.api.MilkCollections)
	}()
	go func() {
		defer wg.Done()
		productions = fetch(ctx, s.logger, "productions", s.api.Productions)
	}()
	go func() {
		defer wg.Done()
		sales = fetch(ctx, s.logger, "sales", s.api.Sales)
	}()
	go func() {
		defer wg.Done()
		stocks = fetch(ctx, s.logger, "stocks", s.api.Stocks)
	}()
	go func() {
		defer wg.Done()
		products = fetch(ctx, s.logger, "products", s.api.Products)
	}()
	wg.Wait()

	milkSummary := Summarize(collections, MilkFields())
	salesSummary := Summarize(sales, SaleFields())

	lines := flattenProductions(productions)
	enriched := EnrichStocks(stocks, products)

	var stockOnHand float64
	for _, st := range stocks {
		stockOnHand += Quantity(st.Quantity)
	}

	return &Dashboard{
		TotalMilkLtr:      milkSummary.TotalQuantity,
		TotalSales:        salesSummary.TotalValue,
		ProductionCount:   len(lines),
		StockOnHand:       stockOnHand,
		Stocks:            enriched,
		RecentProductions: lastProductions(lines, 5),
		RecentSales:       lastSales(sales, 5),
	}
}

func fetch[T any](ctx context.Context, logger *zap.Logger, resource string, load func(context.Context) ([]T, error)) []T {
	records, err := load(ctx)
	if err != nil {
		logger.Warn("dashboard fetch failed", zap.String("resource", resource), zap.Error(err))
		return nil
	}
	return records
}

// EnrichStocks joins raw stock levels against the product catalog and
// derives the low/normal status. Unmatched products render with placeholder
// text instead of failing the view.
func EnrichStocks(stocks []models.Stock, products []models.Product) []models.EnrichedStock {
	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	enriched := make([]models.EnrichedStock, 0, len(stocks))
	for _, st := range stocks {
		es := models.EnrichedStock{
			Stock:       st,
			ProductName: "Unnamed Product",
			Unit:        "units",
			Status:      models.StockNormal,
		}
		if p, ok := catalog[st.ProductID]; ok {
			if p.Name != "" {
				es.ProductName = p.Name
			}
			if p.Unit != "" {
				es.Unit = p.Unit
			}
		}
		if Quantity(st.Quantity) < LowStockThreshold {
			es.Status = models.StockLow
		}
		enriched = append(enriched, es)
	}
	return enriched
}

func flattenProductions(productions []models.Production) []ProductionLine {
	var lines []ProductionLine
	for _, p := range productions {
		for _, item := range p.Products {
			name := item.ProductName
			if name == "" {
				name = item.ProductID
			}
			lines = append(lines, ProductionLine{
				Date:     p.Date,
				Product:  name,
				Quantity: item.Quantity,
			})
		}
	}
	return lines
}

func lastProductions(lines []ProductionLine, n int) []ProductionLine {
	recent := make([]ProductionLine, 0, n)
	for i := len(lines) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, lines[i])
	}
	return recent
}

func lastSales(sales []models.Sale, n int) []SaleLine {
	recent := make([]SaleLine, 0, n)
	for i := len(sales) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, SaleLine{
			Date:     sales[i].Date,
			Customer: sales[i].Customer,
			Total:    Money(sales[i].Total),
		})
	}
	return recent
}
