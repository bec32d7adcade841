package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/server/handlers"
)

// Handlers groups the HTTP adapters wired into the engine.
type Handlers struct {
	Session   *handlers.SessionHandler
	Records   *handlers.RecordsHandler
	Dashboard *handlers.DashboardHandler
	Calendar  *handlers.CalendarHandler
	Reports   *handlers.ReportsHandler
	Agent     *handlers.AgentHandler
}

// New wires the Gin engine with required routes and middlewares. Resource
// paths mirror the backend so the console frontend keeps its URL shapes.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/session", h.Session.Login)
	r.DELETE("/session", h.Session.Logout)

	r.GET("/milk-collections", h.Records.ListMilkCollections)
	r.POST("/milk-collections", h.Records.CreateMilkCollection)
	r.PUT("/milk-collections/:id", h.Records.UpdateMilkCollection)
	r.DELETE("/milk-collections/:id", h.Records.DeleteRecord("milk-collections"))

	r.GET("/productions", h.Records.ListProductions)
	r.GET("/productions/:id", h.Records.GetProduction)
	r.POST("/productions", h.Records.CreateProduction)
	r.PUT("/productions/:id", h.Records.UpdateProduction)
	r.DELETE("/productions/:id", h.Records.DeleteRecord("productions"))

	r.GET("/sales", h.Records.ListSales)
	r.POST("/sales", h.Records.CreateSale)
	r.PUT("/sales/:id", h.Records.UpdateSale)
	r.DELETE("/sales/:id", h.Records.DeleteRecord("sales"))

	r.GET("/products", h.Records.ListProducts)
	r.POST("/products", h.Records.CreateProduct)
	r.PUT("/products/:id", h.Records.UpdateProduct)
	r.DELETE("/products/:id", h.Records.DeleteRecord("products"))

	r.GET("/stocks", h.Records.ListStocks)
	r.POST("/stocks/addstock", h.Records.AddStock)

	r.GET("/dashboard", h.Dashboard.Snapshot)
	r.GET("/calendar", h.Calendar.MonthGrid)

	r.GET("/reports/summary", h.Reports.Summary)
	r.GET("/reports/weekly", h.Reports.Weekly)
	r.POST("/reports/generate", h.Reports.Generate)

	r.POST("/agent/chat", h.Agent.Send)
	r.GET("/agent/chat", h.Agent.History)
	r.DELETE("/agent/chat", h.Agent.Clear)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
