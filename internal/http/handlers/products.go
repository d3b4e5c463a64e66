package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tissovison.com/app/internal/app"
	"tissovison.com/app/internal/http/middleware"
	"tissovison.com/app/internal/http/render"
	"tissovison.com/app/internal/modules/catalog"
	"tissovison.com/app/internal/modules/selection"
	"tissovison.com/app/internal/shared/apperr"
	"tissovison.com/app/pkg/view"
)

// ProductsHandler serves the product grid and the per-product availability
// used by the variant picker.
type ProductsHandler struct {
	App *app.App
}

func NewProductsHandler(a *app.App) *ProductsHandler {
	return &ProductsHandler{App: a}
}

// List handles GET /api/products - the grid, narrowed to the customizer's
// product selection.
func (h *ProductsHandler) List(c *gin.Context) {
	cfg := h.App.Customizer.Config()
	products := h.App.Products()

	items := make([]gin.H, 0, len(products))
	for _, p := range products {
		items = append(items, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"price":       view.MoneyFromCents(p.PriceCents, "EUR"),
			"price_cents": p.PriceCents,
			"image":       p.Image,
			"description": p.Description,
			"colors":      p.Colors,
			"sizes":       p.Sizes,
		})
	}

	render.JSON(c, http.StatusOK, gin.H{
		"section_title": cfg.SectionTitle,
		"products":      items,
	})
}

// Availability handles GET /api/products/:id/availability?color=&size= -
// the variant picker's view of one product: which sizes are selectable for
// the color and what the add-to-cart button should say.
func (h *ProductsHandler) Availability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product id.", nil))
		return
	}
	p, ok := catalog.FindProduct(h.App.Products(), id)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	sess := selection.NewSession()
	sess.Open(p)
	if color := c.Query("color"); color != "" {
		sess.SelectColor(color)
	}
	if size := c.Query("size"); size != "" {
		sess.SelectSize(size)
	}

	_, color, size, variant := sess.Current()
	sizes := make(map[string]bool, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes[s] = sess.IsSizeAvailable(s, color)
	}

	resp := gin.H{
		"color":          color,
		"size":           size,
		"sizes":          sizes,
		"purchase_state": sess.PurchaseState(),
	}
	if variant != nil {
		resp["variant"] = variant
	}
	render.JSON(c, http.StatusOK, resp)
}
