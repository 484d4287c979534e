package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?categoryId=
func (h *MenuController) List(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("categoryId"))
	items, err := h.Svc.List(uint(categoryID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	m, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /menu-items/by-name/:name
func (h *MenuController) DetailByName(c *gin.Context) {
	name := c.Param("name")
	m, err := h.Svc.GetByName(name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /admin/menu-items
func (h *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.Create(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /admin/menu-items/:id
func (h *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var body struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		ImageURL    *string          `json:"imageUrl"`
		IsAvailable *bool            `json:"isAvailable"`
		CategoryID  *uint            `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Price != nil {
		updates["price"] = *body.Price
	}
	if body.ImageURL != nil {
		updates["image_url"] = *body.ImageURL
	}
	if body.IsAvailable != nil {
		updates["is_available"] = *body.IsAvailable
	}
	if body.CategoryID != nil {
		updates["category_id"] = *body.CategoryID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "no fields to update")
		return
	}

	if err := h.Svc.Update(uint(id), updates); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PUT /admin/menu-items/:id/availability
func (h *MenuController) SetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var body struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetAvailability(uint(id), *body.IsAvailable); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /admin/menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
