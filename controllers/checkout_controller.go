package controllers

import (
	"errors"
	"io"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout places an order from the current user's cart.
func (h *CheckoutController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var in services.CheckoutIn
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Checkout(c.Request.Context(), uid, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /admin/checkout/carts/:id is the cart-id call path.
func (h *CheckoutController) CheckoutCart(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartID <= 0 {
		resp.BadRequest(c, "invalid cart id")
		return
	}

	var in services.CheckoutIn
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.CheckoutCart(c.Request.Context(), uint(cartID), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /checkout/intent exposes the gateway boundary for clients paying up front.
func (h *CheckoutController) CreateIntent(c *gin.Context) {
	var body struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	intent, err := h.Svc.CreatePaymentIntent(body.Amount)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, intent)
}
