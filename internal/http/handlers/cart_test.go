package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tissovison.com/app/internal/app"
	apphttp "tissovison.com/app/internal/http"
	"tissovison.com/app/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *app.App) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(logger, storage.NewFile(t.TempDir()))
	return apphttp.NewRouter(a), a
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartFlow(t *testing.T) {
	r, a := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":1,"color":"White","size":"M"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	items := a.Ledger.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "white-m", items[0].VariantID)
	assert.Equal(t, "OWL-WHT-M", items[0].SKU)
	assert.Equal(t, 1, items[0].Quantity)

	// same variant again merges into one line
	w = doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":1,"color":"White","size":"M"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	items = a.Ledger.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// badge header reflects the count at request time
	w = doJSON(t, r, http.MethodGet, "/api/cart", "")
	assert.Equal(t, "2", w.Header().Get("X-Cart-Count"))
}

func TestAddToCartTotalsInResponse(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":4,"color":"White","size":"One Size"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Cart struct {
			Totals struct {
				SubtotalCents int64  `json:"subtotal_cents"`
				TaxCents      int64  `json:"tax_cents"`
				ShippingCents int64  `json:"shipping_cents"`
				TotalCents    int64  `json:"total_cents"`
				Total         string `json:"total"`
			} `json:"totals"`
		} `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	tot := resp.Cart.Totals
	assert.Equal(t, int64(98000), tot.SubtotalCents)
	assert.Equal(t, int64(19600), tot.TaxCents)
	assert.Equal(t, int64(0), tot.ShippingCents)
	assert.Equal(t, int64(117600), tot.TotalCents)
	assert.Equal(t, "€1176.00", tot.Total)
}

func TestAddToCartOutOfStock(t *testing.T) {
	r, a := newTestRouter(t)

	// make White/M of product 1 out of stock
	for i := range a.Catalog[0].Variants {
		if a.Catalog[0].Variants[i].ID == "white-m" {
			a.Catalog[0].Variants[i].Stock = 0
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":1,"color":"White","size":"M"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, a.Ledger.Items())
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":99,"color":"White","size":"M"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "color")
	assert.Contains(t, resp.Fields, "size")
}

func TestUpdateRemoveClear(t *testing.T) {
	r, a := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":1,"color":"White","size":"M"}`)
	doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":2,"color":"Blue","size":"S"}`)

	w := doJSON(t, r, http.MethodPatch, "/api/cart/items/white-m", `{"qty":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, a.Ledger.Items()[0].Quantity)

	w = doJSON(t, r, http.MethodPatch, "/api/cart/items/white-m", `{"qty":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, a.Ledger.Items(), 1)
	assert.Equal(t, "blue-s", a.Ledger.Items()[0].VariantID)

	w = doJSON(t, r, http.MethodDelete, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, a.Ledger.Items())

	w = doJSON(t, r, http.MethodGet, "/api/cart", "")
	assert.Equal(t, "0", w.Header().Get("X-Cart-Count"))
}

func TestCustomizerSelectionRevalidatesCart(t *testing.T) {
	r, a := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"product_id":1,"color":"White","size":"M"}`)
	require.Len(t, a.Ledger.Items(), 1)

	// deselect product 1; its cart line must be dropped
	w := doJSON(t, r, http.MethodPut, "/api/customizer", `{"selectedProducts":[2,3]}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, a.Ledger.Items())
}

func TestProductsListHonorsSelection(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/customizer", `{"selectedProducts":[4]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Green Tassel Scarf", resp.Products[0].Name)
}

func TestAvailabilityEndpoint(t *testing.T) {
	r, a := newTestRouter(t)

	// zero out Black/XS of product 1
	for i := range a.Catalog[0].Variants {
		if a.Catalog[0].Variants[i].ID == "black-xs" {
			a.Catalog[0].Variants[i].Stock = 0
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/products/1/availability?color=Black&size=XS", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sizes         map[string]bool `json:"sizes"`
		PurchaseState string          `json:"purchase_state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Sizes["XS"])
	assert.True(t, resp.Sizes["M"])
	assert.Equal(t, "out_of_stock", resp.PurchaseState)
}

func TestCustomizerExportImport(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/customizer", `{"brandName":"ACME"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/customizer/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Header().Get("Content-Disposition"), "tisso-vison-config.json"))
	exported := w.Body.String()

	w = doJSON(t, r, http.MethodPost, "/api/customizer/reset", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/customizer/import", exported)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/customizer", "")
	var cfg struct {
		BrandName string `json:"brandName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "ACME", cfg.BrandName)
}

func TestCustomizerImportRejectsInvalidJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customizer/import", "{broken")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
