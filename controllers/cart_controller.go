package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, subtotal, err := h.Svc.Get(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items. The body may carry menuItemId or a menu item name.
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// POST /carts/:id/items is the cart-id call path.
func (h *CartController) AddToCart(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartID <= 0 {
		resp.BadRequest(c, "invalid cart id")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddToCart(uint(cartID), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// GET /admin/carts/:id lists a cart's lines by cart id.
func (h *CartController) GetItems(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartID <= 0 {
		resp.BadRequest(c, "invalid cart id")
		return
	}

	items, err := h.Svc.GetItems(uint(cartID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// DELETE /cart/items/:menuItemId
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	menuItemID, err := strconv.Atoi(c.Param("menuItemId"))
	if err != nil || menuItemID <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if err := h.Svc.RemoveItem(uid, uint(menuItemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
