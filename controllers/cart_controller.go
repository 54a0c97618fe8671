package controllers

import (
	"net/http"

	"jasit-store/middleware"
	"jasit-store/models"
	"jasit-store/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// @Summary Get cart
// @Description Lines of the session cart with subtotal, tax (11%) and grand total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	ok(c, http.StatusOK, "Keranjang belanja", ctrl.cart.View(middleware.CurrentSession(c)))
}

// @Summary Add to cart
// @Description Add a product to the session cart. Quantity below 1 counts as 1
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Cart item"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.cart.AddProduct(c.Request.Context(), middleware.StartSession(c), req.ProductID, req.Quantity)
	if err != nil {
		fail(c, err, "Gagal menambahkan ke keranjang")
		return
	}
	ok(c, http.StatusOK, "Produk ditambahkan ke keranjang", view)
}

// @Summary Update cart quantity
// @Description Replace the quantity of a line. Zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	view := ctrl.cart.SetQuantity(middleware.CurrentSession(c), c.Param("id"), *req.Quantity)
	ok(c, http.StatusOK, "Keranjang diperbarui", view)
}

// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	view := ctrl.cart.Remove(middleware.CurrentSession(c), c.Param("id"))
	ok(c, http.StatusOK, "Produk dihapus dari keranjang", view)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ok(c, http.StatusOK, "Keranjang dikosongkan", ctrl.cart.Clear(middleware.CurrentSession(c)))
}
