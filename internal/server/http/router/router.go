package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pkgAuth "github.com/primedecor/backend/internal/pkg/auth"
	"github.com/primedecor/backend/internal/server/http/handlers"
	"github.com/primedecor/backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Public routes
// serve the storefront; /api/admin requires the back-office token.
func Setup(facade handlers.StudioFacade, gate pkgAuth.Gate, registry *prometheus.Registry, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)
	quoteHandler := handlers.NewQuoteHandler(facade)
	newsletterHandler := handlers.NewNewsletterHandler(facade)
	projectHandler := handlers.NewProjectHandler(facade)
	mediaHandler := handlers.NewMediaHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Create)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/projects", projectHandler.ListPublic)
	api.GET("/projects/:id", projectHandler.GetPublic)
	api.GET("/gallery", mediaHandler.Gallery)
	api.POST("/contact", contactHandler.Submit)
	api.POST("/quotes", quoteHandler.Submit)
	api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
	api.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(gate))
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.GET("/projects", projectHandler.ListAdmin)
	admin.GET("/projects/:id", projectHandler.GetAdmin)
	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)
	admin.GET("/contacts", contactHandler.List)
	admin.PUT("/contacts/:id/status", contactHandler.UpdateStatus)
	admin.GET("/quotes", quoteHandler.List)
	admin.PUT("/quotes/:id/status", quoteHandler.UpdateStatus)
	admin.GET("/subscribers", newsletterHandler.List)
	admin.POST("/media", mediaHandler.Register)
	admin.DELETE("/media/:id", mediaHandler.Delete)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return engine
}
