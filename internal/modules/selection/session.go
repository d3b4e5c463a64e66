package selection

import (
	"tissovison.com/app/internal/modules/catalog"
)

// PurchaseState drives the add-to-cart button in the shell.
type PurchaseState string

const (
	NoSelection PurchaseState = "no_selection"
	OutOfStock  PurchaseState = "out_of_stock"
	Ready       PurchaseState = "ready"
)

// Session holds the transient color/size picks for one open product view.
// Only one session is active at a time; all mutation is synchronous.
type Session struct {
	product *catalog.Product
	color   string
	size    string
	variant *catalog.Variant
}

func NewSession() *Session { return &Session{} }

// Open starts a session for a product. The first listed color is selected by
// default; size and variant start unset. The caller guarantees the product
// has at least one color and one size.
func (s *Session) Open(p catalog.Product) {
	s.product = &p
	s.color = ""
	if len(p.Colors) > 0 {
		s.color = p.Colors[0]
	}
	s.size = ""
	s.variant = nil
}

// SelectColor picks a color. Unknown colors are ignored. A color change
// resets the size and resolved variant since stock differs per color.
func (s *Session) SelectColor(color string) {
	if s.product == nil || !s.product.HasColor(color) {
		return
	}
	s.color = color
	s.size = ""
	s.variant = nil
}

// SelectSize picks a size and resolves the variant for the current color.
// Unknown sizes are ignored. The size is recorded even when no variant
// backs the pair; PurchaseState then reports OutOfStock.
func (s *Session) SelectSize(size string) {
	if s.product == nil || !s.product.HasSize(size) {
		return
	}
	s.size = size
	if v, ok := s.product.FindVariant(s.color, size); ok {
		s.variant = &v
	} else {
		s.variant = nil
	}
}

// IsSizeAvailable reports whether (color, size) has a variant with stock.
func (s *Session) IsSizeAvailable(size, color string) bool {
	if s.product == nil {
		return false
	}
	v, ok := s.product.FindVariant(color, size)
	return ok && v.Stock > 0
}

// PurchaseState derives the three-way button state from the current picks.
// A complete selection with no in-stock variant behind it is OutOfStock,
// whether the variant record is missing or merely at zero.
func (s *Session) PurchaseState() PurchaseState {
	if s.product == nil || s.color == "" || s.size == "" {
		return NoSelection
	}
	if s.variant == nil || s.variant.Stock <= 0 {
		return OutOfStock
	}
	return Ready
}

// Current returns the session's product and picks for the shell.
func (s *Session) Current() (product *catalog.Product, color, size string, variant *catalog.Variant) {
	return s.product, s.color, s.size, s.variant
}

// Close resets the session.
func (s *Session) Close() {
	s.product = nil
	s.color = ""
	s.size = ""
	s.variant = nil
}
