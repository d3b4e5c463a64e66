package view

// CartItem is one cart row prepared for display.
type CartItem struct {
	VariantID string `json:"variant_id"`
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	SKU       string `json:"sku"`
	Qty       int    `json:"qty"`

	UnitPriceCents int64 `json:"unit_price_cents"`
	LineTotalCents int64 `json:"line_total_cents"`

	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	AddedAt   string `json:"added_at"`
}

// Totals is the cart summary block: count, subtotal, tax, shipping, total.
type Totals struct {
	Count         int   `json:"count"`
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	ShippingCents int64 `json:"shipping_cents"`
	TotalCents    int64 `json:"total_cents"`

	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

type CartPage struct {
	Items    []CartItem `json:"items"`
	Currency string     `json:"currency"`
	Totals   Totals     `json:"totals"`
}
