package http

import (
	"github.com/gin-gonic/gin"

	"tissovison.com/app/internal/app"
	"tissovison.com/app/internal/http/handlers"
	"tissovison.com/app/internal/http/middleware"
)

// NewRouter wires the JSON API around the application context.
func NewRouter(a *app.App) *gin.Engine {
	r := gin.New()

	// ErrorHandler must wrap Recovery so a recovered panic still gets a
	// JSON error response on the way back out.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(a.Logger),
		middleware.ErrorHandler(a.Logger),
		middleware.Recovery(a.Logger),
		middleware.CartCount(a.Ledger),
	)

	products := handlers.NewProductsHandler(a)
	cartH := handlers.NewCartHandler(a)
	cust := handlers.NewCustomizerHandler(a)

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/products/:id/availability", products.Availability)

		api.GET("/cart", cartH.Get)
		api.POST("/cart/items", cartH.Add)
		api.PATCH("/cart/items/:variantID", cartH.Update)
		api.DELETE("/cart/items/:variantID", cartH.Remove)
		api.DELETE("/cart", cartH.Clear)

		api.GET("/customizer", cust.Get)
		api.PUT("/customizer", cust.Update)
		api.POST("/customizer/reset", cust.Reset)
		api.GET("/customizer/export", cust.Export)
		api.POST("/customizer/import", cust.Import)
	}

	return r
}
