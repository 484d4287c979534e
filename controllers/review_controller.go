package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// GET /menu-items/:id/reviews
func (h *ReviewController) ListForMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	out, err := h.Svc.ListForMenuItem(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in services.ReviewIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rev, err := h.Svc.Create(uid, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rev)
}

// PUT /reviews/:id
func (h *ReviewController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid review id")
		return
	}

	var body struct {
		Rating  int    `json:"rating" binding:"required"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Update(uint(id), uid, body.Rating, body.Message); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /admin/reviews/:id
func (h *ReviewController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid review id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
