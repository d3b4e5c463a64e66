package cart

import (
	"time"
)

// LineItem is one row in the cart ledger: a denormalized snapshot of a
// variant at the time it was added, plus a quantity. The JSON keys match the
// persisted cart layout, so carts written by earlier storefront versions
// rehydrate unchanged.
type LineItem struct {
	VariantID  string    `json:"variantId"`
	ProductID  int       `json:"productId"`
	Name       string    `json:"name"`
	Price      string    `json:"price,omitempty"` // legacy display string, e.g. "980,00€"
	PriceCents int64     `json:"priceCents,omitempty"`
	Image      string    `json:"image"`
	Color      string    `json:"color"`
	Size       string    `json:"size"`
	SKU        string    `json:"sku"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"addedAt"`
}

// Totals are the derived cart aggregates, all in cents.
type Totals struct {
	Count    int
	Subtotal int64
	Tax      int64
	Shipping int64
	Total    int64
}

// Action names the mutation a Change notification reports.
type Action string

const (
	ActionAdd      Action = "add"
	ActionUpdate   Action = "update"
	ActionRemove   Action = "remove"
	ActionClear    Action = "clear"
	ActionValidate Action = "validate"
)

// Change is delivered to subscribed observers after every mutation. Items is
// a snapshot of the full ledger; Item is set for add/update/remove.
type Change struct {
	Action  Action
	Items   []LineItem
	Item    *LineItem
	Message string
}

// Observer receives ledger change notifications.
type Observer func(Change)
