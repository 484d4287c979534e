package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Repo *repository.PaymentRepository }

func NewPaymentController(r *repository.PaymentRepository) *PaymentController {
	return &PaymentController{Repo: r}
}

// GET /profile/payments
func (h *PaymentController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Repo.ListForUser(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /payments/:id, owner or admin.
func (h *PaymentController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid payment id")
		return
	}
	p, err := h.Repo.GetByID(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if p.UserID != utils.CurrentUserID(c) && utils.CurrentRole(c) != "admin" {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/payments/:id
func (h *PaymentController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid payment id")
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
