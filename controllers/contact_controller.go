package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct{ Svc *services.ContactService }

func NewContactController(s *services.ContactService) *ContactController {
	return &ContactController{Svc: s}
}

// POST /contact
func (h *ContactController) Create(c *gin.Context) {
	var in services.ContactIn
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

// GET /admin/contact?limit=
func (h *ContactController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.Svc.List(limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// DELETE /admin/contact/:id
func (h *ContactController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid message id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
