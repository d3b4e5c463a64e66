package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tissovison.com/app/internal/modules/cart"
)

const cartCountKey = "cart_count"

// CartCount exposes the ledger's item count on every response so clients can
// render the cart badge without fetching the full cart.
func CartCount(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := ledger.Count()
		c.Set(cartCountKey, n)
		c.Writer.Header().Set("X-Cart-Count", strconv.Itoa(n))
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
