package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tissovison.com/app/internal/app"
	"tissovison.com/app/internal/http/middleware"
	"tissovison.com/app/internal/http/render"
	"tissovison.com/app/internal/http/validation"
	"tissovison.com/app/internal/modules/cart"
	"tissovison.com/app/internal/modules/catalog"
	"tissovison.com/app/internal/modules/selection"
	"tissovison.com/app/internal/shared/apperr"
	"tissovison.com/app/pkg/view"
)

// CartHandler handles cart operations.
type CartHandler struct {
	App *app.App
}

func NewCartHandler(a *app.App) *CartHandler {
	return &CartHandler{App: a}
}

// Get handles GET /api/cart - the cart page with totals.
func (h *CartHandler) Get(c *gin.Context) {
	render.JSON(c, http.StatusOK, h.cartPage())
}

type addItemRequest struct {
	ProductID int    `json:"product_id" binding:"required,gte=1"`
	Color     string `json:"color" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Qty       int    `json:"qty" binding:"omitempty,gte=1,lte=99"`
}

// Add handles POST /api/cart/items. The request goes through a selection
// session first, so only a Ready (in-stock, fully selected) variant reaches
// the ledger - the same gate the product modal applies.
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart request.", validation.FromBindError(err, &req)))
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	p, ok := catalog.FindProduct(h.App.Products(), req.ProductID)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	sess := selection.NewSession()
	sess.Open(p)
	sess.SelectColor(req.Color)
	sess.SelectSize(req.Size)

	switch sess.PurchaseState() {
	case selection.Ready:
	case selection.OutOfStock:
		middleware.Fail(c, apperr.ConflictErr("Out of stock."))
		return
	default:
		middleware.Fail(c, apperr.InvalidErr("Select a color and size first.", nil))
		return
	}

	_, color, size, variant := sess.Current()
	h.App.Ledger.AddItem(cart.LineItem{
		VariantID:  variant.ID,
		ProductID:  p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Image:      p.Image,
		Color:      color,
		Size:       size,
		SKU:        variant.SKU,
		Quantity:   req.Qty,
	})
	sess.Close()

	// Reconcile against live stock right after adding, as the grid does.
	h.App.Ledger.Validate(h.App.Products())

	render.WithFlash(c, http.StatusCreated, view.FlashSuccess, "Added "+p.Name+" to cart",
		gin.H{"cart": h.cartPage()})
}

type updateQtyRequest struct {
	Qty int `json:"qty" binding:"gte=0,lte=99"`
}

// Update handles PATCH /api/cart/items/:variantID - sets the quantity
// exactly; zero removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	variantID := strings.TrimSpace(c.Param("variantID"))
	if variantID == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing variant id.", nil))
		return
	}

	var req updateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid quantity.", validation.FromBindError(err, &req)))
		return
	}

	h.App.Ledger.UpdateQuantity(variantID, req.Qty)
	render.WithFlash(c, http.StatusOK, view.FlashSuccess, "Quantity updated",
		gin.H{"cart": h.cartPage()})
}

// Remove handles DELETE /api/cart/items/:variantID.
func (h *CartHandler) Remove(c *gin.Context) {
	variantID := strings.TrimSpace(c.Param("variantID"))
	if variantID == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing variant id.", nil))
		return
	}

	h.App.Ledger.RemoveItem(variantID)
	render.WithFlash(c, http.StatusOK, view.FlashSuccess, "Item removed",
		gin.H{"cart": h.cartPage()})
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.App.Ledger.Clear()
	render.WithFlash(c, http.StatusOK, view.FlashSuccess, "Cart cleared",
		gin.H{"cart": h.cartPage()})
}

func (h *CartHandler) cartPage() view.CartPage {
	items := h.App.Ledger.Items()
	t := h.App.Ledger.Totals()

	page := view.CartPage{
		Items:    make([]view.CartItem, 0, len(items)),
		Currency: "EUR",
		Totals: view.Totals{
			Count:         t.Count,
			SubtotalCents: t.Subtotal,
			TaxCents:      t.Tax,
			ShippingCents: t.Shipping,
			TotalCents:    t.Total,
			Subtotal:      view.MoneyFromCents(t.Subtotal, "EUR"),
			Tax:           view.MoneyFromCents(t.Tax, "EUR"),
			Shipping:      view.MoneyFromCents(t.Shipping, "EUR"),
			Total:         view.MoneyFromCents(t.Total, "EUR"),
		},
	}

	for _, it := range items {
		line := it.PriceCents * int64(it.Quantity)
		page.Items = append(page.Items, view.CartItem{
			VariantID:      it.VariantID,
			ProductID:      it.ProductID,
			Name:           it.Name,
			Image:          it.Image,
			Color:          it.Color,
			Size:           it.Size,
			SKU:            it.SKU,
			Qty:            it.Quantity,
			UnitPriceCents: it.PriceCents,
			LineTotalCents: line,
			UnitPrice:      view.MoneyFromCents(it.PriceCents, "EUR"),
			LineTotal:      view.MoneyFromCents(line, "EUR"),
			AddedAt:        it.AddedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return page
}
