package controllers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/ungaaaabungaaa/yumyard-sub000/models"

	"github.com/gin-gonic/gin"
)

// Carts are held in memory per session key. Table QR sessions reuse the same
// key across requests so a reloaded page gets its cart back; the admin
// walk-up flow uses a throwaway key and the cart dies with the process.
var (
	cartMu sync.Mutex
	carts  = make(map[string]*models.Cart)
)

func sessionCart(sessionId string) *models.Cart {
	cartMu.Lock()
	defer cartMu.Unlock()
	cart, ok := carts[sessionId]
	if !ok {
		cart = models.NewCart()
		carts[sessionId] = cart
	}
	return cart
}

func cartView(cart *models.Cart) gin.H {
	return gin.H{
		"items":        cart.Items(),
		"total_amount": cart.TotalAmount(),
		"total_items":  cart.TotalItemCount(),
	}
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := sessionCart(c.Param("session_id"))
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.CartItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		cart := sessionCart(c.Param("session_id"))
		cart.AddItem(item)
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		quantity, err := strconv.Atoi(c.Query("quantity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be an integer"})
			return
		}
		cart := sessionCart(c.Param("session_id"))
		cart.UpdateQuantity(c.Param("menu_id"), quantity)
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := sessionCart(c.Param("session_id"))
		cart.RemoveItem(c.Param("menu_id"))
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := sessionCart(c.Param("session_id"))
		cart.Clear()
		c.JSON(http.StatusOK, cartView(cart))
	}
}
