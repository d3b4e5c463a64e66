package catalog

// Variant is one purchasable color/size combination with its own stock and SKU.
type Variant struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Size  string `json:"size"`
	Stock int    `json:"stock"`
	SKU   string `json:"sku"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Colors      []string  `json:"colors"`
	Sizes       []string  `json:"sizes"`
	Variants    []Variant `json:"variants"`
}

// FindVariant returns the variant for (color, size), if one exists.
// At most one variant per pair.
func (p Product) FindVariant(color, size string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Color == color && v.Size == size {
			return v, true
		}
	}
	return Variant{}, false
}

func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// FindProduct looks a product up by id in a catalog slice.
func FindProduct(products []Product, id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Filter returns the products whose ids appear in ids, preserving catalog
// order. An empty selection means the full catalog.
func Filter(products []Product, ids []int) []Product {
	if len(ids) == 0 {
		return products
	}
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]Product, 0, len(ids))
	for _, p := range products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
