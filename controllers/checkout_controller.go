package controllers

import (
	"errors"
	"net/http"

	"jasit-store/middleware"
	"jasit-store/models"
	"jasit-store/services"
	"jasit-store/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Checkout preview
// @Description Cart summary and a contact form prefilled from the profile when signed in
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response{data=models.CheckoutPreview}
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [get]
func (ctrl *CheckoutController) Preview(c *gin.Context) {
	preview, err := ctrl.checkout.Preview(c.Request.Context(), middleware.CurrentSession(c), middleware.CurrentPrincipal(c))
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Ringkasan pesanan", preview)
}

// @Summary Place order
// @Description Confirms the cart contents and clears the cart. No payment is taken
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Contact details"
// @Success 201 {object} models.Response{data=models.CheckoutConfirmation}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	confirmation, err := ctrl.checkout.Checkout(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Pesanan berhasil dibuat!", confirmation)
}

func (ctrl *CheckoutController) fail(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrConflict) {
		failRedirect(c, err, "Keranjang belanja kosong", "/cart")
		return
	}
	fail(c, err, "Gagal memproses pesanan")
}
