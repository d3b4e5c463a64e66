package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tissovison.com/app/internal/modules/catalog"
)

func testProduct() catalog.Product {
	return catalog.Product{
		ID:     1,
		Name:   "Orange Wide Leg",
		Colors: []string{"White", "Black"},
		Sizes:  []string{"XS", "S", "M"},
		Variants: []catalog.Variant{
			{ID: "white-xs", Color: "White", Size: "XS", Stock: 5, SKU: "OWL-WHT-XS"},
			{ID: "white-s", Color: "White", Size: "S", Stock: 0, SKU: "OWL-WHT-S"},
			{ID: "white-m", Color: "White", Size: "M", Stock: 12, SKU: "OWL-WHT-M"},
			{ID: "black-xs", Color: "Black", Size: "XS", Stock: 0, SKU: "OWL-BLK-XS"},
			{ID: "black-s", Color: "Black", Size: "S", Stock: 7, SKU: "OWL-BLK-S"},
			// no Black/M variant at all
		},
	}
}

func TestOpenDefaultsToFirstColor(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())

	_, color, size, variant := s.Current()
	assert.Equal(t, "White", color)
	assert.Empty(t, size)
	assert.Nil(t, variant)
	assert.Equal(t, NoSelection, s.PurchaseState())
}

func TestSelectSizeResolvesVariant(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectSize("M")

	_, _, size, variant := s.Current()
	assert.Equal(t, "M", size)
	require.NotNil(t, variant)
	assert.Equal(t, "white-m", variant.ID)
	assert.Equal(t, Ready, s.PurchaseState())
}

func TestSelectColorResetsSizeAndVariant(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectSize("M")
	require.Equal(t, Ready, s.PurchaseState())

	s.SelectColor("Black")

	_, color, size, variant := s.Current()
	assert.Equal(t, "Black", color)
	assert.Empty(t, size)
	assert.Nil(t, variant)
	assert.Equal(t, NoSelection, s.PurchaseState())
}

func TestSelectColorUnknownIsNoop(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectSize("M")

	s.SelectColor("Chartreuse")

	_, color, _, variant := s.Current()
	assert.Equal(t, "White", color)
	require.NotNil(t, variant)
	assert.Equal(t, Ready, s.PurchaseState())
}

func TestSelectSizeUnknownIsNoop(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectSize("XXL")

	_, _, size, _ := s.Current()
	assert.Empty(t, size)
	assert.Equal(t, NoSelection, s.PurchaseState())
}

func TestZeroStockSelectionIsOutOfStock(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectSize("S") // White/S exists with stock 0

	assert.Equal(t, OutOfStock, s.PurchaseState())
}

func TestMissingVariantSelectionIsOutOfStock(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectColor("Black")
	s.SelectSize("M") // no Black/M variant record

	_, _, size, variant := s.Current()
	assert.Equal(t, "M", size, "the pick itself is still recorded")
	assert.Nil(t, variant)
	assert.Equal(t, OutOfStock, s.PurchaseState())
}

func TestIsSizeAvailable(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())

	assert.True(t, s.IsSizeAvailable("XS", "White"))
	assert.False(t, s.IsSizeAvailable("S", "White"), "zero stock")
	assert.False(t, s.IsSizeAvailable("XS", "Black"), "zero stock")
	assert.False(t, s.IsSizeAvailable("M", "Black"), "no variant record")
	assert.True(t, s.IsSizeAvailable("S", "Black"))
}

func TestCloseResetsEverything(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectSize("M")
	s.Close()

	product, color, size, variant := s.Current()
	assert.Nil(t, product)
	assert.Empty(t, color)
	assert.Empty(t, size)
	assert.Nil(t, variant)
	assert.Equal(t, NoSelection, s.PurchaseState())
	assert.False(t, s.IsSizeAvailable("M", "White"))
}

func TestReopenStartsFresh(t *testing.T) {
	s := NewSession()
	s.Open(testProduct())
	s.SelectColor("Black")
	s.SelectSize("S")

	s.Open(testProduct())

	_, color, size, variant := s.Current()
	assert.Equal(t, "White", color)
	assert.Empty(t, size)
	assert.Nil(t, variant)
}
