package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"tissovison.com/app/internal/modules/catalog"
	"tissovison.com/app/internal/storage"
	"tissovison.com/app/pkg/view"
)

// StorageKey is the durable-storage namespace the ledger persists under.
const StorageKey = "tisso_vison_cart"

const (
	taxRateBasisPoints = 2000 // 20%

	// Free shipping strictly above 100.00, flat 10.00 otherwise.
	freeShippingOverCents = 10000
	flatShippingCents     = 1000
)

// Ledger is the authoritative, persisted collection of cart line items.
// It is process-wide singleton state; all mutation goes through its methods
// and is serialized by an internal mutex. Persistence is best-effort: a
// failed write is logged and the in-memory state stands.
type Ledger struct {
	store storage.Store
	log   *slog.Logger

	mu        sync.Mutex
	items     []LineItem
	observers []Observer
}

// NewLedger loads the persisted cart from store. Missing or corrupt data
// yields an empty ledger, never an error.
func NewLedger(store storage.Store, log *slog.Logger) *Ledger {
	l := &Ledger{store: store, log: log}
	l.load()
	return l
}

func (l *Ledger) load() {
	raw, err := l.store.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.log.Warn("cart: could not load persisted cart", "err", err)
		}
		return
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		l.log.Warn("cart: persisted cart is malformed, starting empty", "err", err)
		return
	}

	// Older storefront versions persisted the display price string only.
	for i := range items {
		if items[i].PriceCents == 0 && items[i].Price != "" {
			if cents, ok := view.ParsePriceCents(items[i].Price); ok {
				items[i].PriceCents = cents
			}
		}
	}
	l.items = items
}

// Subscribe registers an observer for ledger change notifications.
func (l *Ledger) Subscribe(fn Observer) {
	l.mu.Lock()
	l.observers = append(l.observers, fn)
	l.mu.Unlock()
}

// AddItem adds a line item. A line with the same variant id is merged by
// incrementing its quantity; otherwise the item is appended and timestamped.
func (l *Ledger) AddItem(item LineItem) {
	if item.VariantID == "" || item.Quantity <= 0 {
		return
	}

	l.mu.Lock()
	idx := l.indexOf(item.VariantID)
	if idx >= 0 {
		l.items[idx].Quantity += item.Quantity
		item = l.items[idx]
	} else {
		if item.AddedAt.IsZero() {
			item.AddedAt = time.Now().UTC()
		}
		l.items = append(l.items, item)
	}
	l.persistLocked()
	ch := Change{
		Action:  ActionAdd,
		Items:   l.snapshotLocked(),
		Item:    &item,
		Message: "Added " + item.Name + " to cart",
	}
	l.mu.Unlock()

	l.notify(ch)
}

// UpdateQuantity sets a line's quantity exactly. qty <= 0 removes the line.
// Unknown variant ids are a no-op.
func (l *Ledger) UpdateQuantity(variantID string, qty int) {
	if qty <= 0 {
		l.RemoveItem(variantID)
		return
	}

	l.mu.Lock()
	idx := l.indexOf(variantID)
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	l.items[idx].Quantity = qty
	item := l.items[idx]
	l.persistLocked()
	ch := Change{Action: ActionUpdate, Items: l.snapshotLocked(), Item: &item}
	l.mu.Unlock()

	l.notify(ch)
}

// RemoveItem deletes the line for variantID if present; otherwise a no-op.
func (l *Ledger) RemoveItem(variantID string) {
	l.mu.Lock()
	idx := l.indexOf(variantID)
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	removed := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.persistLocked()
	ch := Change{
		Action:  ActionRemove,
		Items:   l.snapshotLocked(),
		Item:    &removed,
		Message: "Removed " + removed.Name + " from cart",
	}
	l.mu.Unlock()

	l.notify(ch)
}

// Clear empties the ledger unconditionally.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.items = []LineItem{}
	l.persistLocked()
	ch := Change{Action: ActionClear, Items: l.snapshotLocked(), Message: "Cart cleared"}
	l.mu.Unlock()

	l.notify(ch)
}

// Items returns a snapshot of the ledger in insertion order.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Count returns the sum of quantities across all lines.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// Totals computes the derived aggregates: count, subtotal, 20% tax, flat
// shipping below the free threshold, and their sum.
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()

	var t Totals
	for _, it := range l.items {
		t.Count += it.Quantity
		t.Subtotal += it.PriceCents * int64(it.Quantity)
	}
	t.Tax = (t.Subtotal*taxRateBasisPoints + 5000) / 10000
	if t.Subtotal <= freeShippingOverCents {
		t.Shipping = flatShippingCents
	}
	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}

// Validate reconciles the ledger against the authoritative catalog: lines
// whose product or variant is gone, or whose variant is out of stock, are
// dropped; quantities above stock are clamped. Reports whether anything
// changed. Running it twice against the same catalog changes nothing the
// second time.
func (l *Ledger) Validate(products []catalog.Product) bool {
	l.mu.Lock()

	valid := make([]LineItem, 0, len(l.items))
	changed := false
	for _, it := range l.items {
		p, ok := catalog.FindProduct(products, it.ProductID)
		if !ok {
			changed = true
			continue
		}
		v, ok := findVariantByID(p, it.VariantID)
		if !ok || v.Stock <= 0 {
			changed = true
			continue
		}
		if it.Quantity > v.Stock {
			it.Quantity = v.Stock
			changed = true
		}
		valid = append(valid, it)
	}

	if !changed {
		l.mu.Unlock()
		return false
	}

	l.items = valid
	l.persistLocked()
	ch := Change{
		Action:  ActionValidate,
		Items:   l.snapshotLocked(),
		Message: "Cart updated - some items were removed or adjusted",
	}
	l.mu.Unlock()

	l.notify(ch)
	return true
}

func findVariantByID(p catalog.Product, variantID string) (catalog.Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return catalog.Variant{}, false
}

func (l *Ledger) indexOf(variantID string) int {
	for i, it := range l.items {
		if it.VariantID == variantID {
			return i
		}
	}
	return -1
}

func (l *Ledger) snapshotLocked() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) persistLocked() {
	raw, err := json.Marshal(l.items)
	if err != nil {
		l.log.Warn("cart: could not serialize cart", "err", err)
		return
	}
	if err := l.store.Set(context.Background(), StorageKey, raw); err != nil {
		l.log.Warn("cart: could not persist cart", "err", err)
	}
}

func (l *Ledger) notify(ch Change) {
	l.mu.Lock()
	obs := make([]Observer, len(l.observers))
	copy(obs, l.observers)
	l.mu.Unlock()

	for _, fn := range obs {
		fn(ch)
	}
}
