package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// Admin-facing user management; profile self-service lives on AuthController.
type UserController struct{ Repo *repository.UserRepository }

func NewUserController(r *repository.UserRepository) *UserController { return &UserController{Repo: r} }

// GET /admin/users?limit=
func (h *UserController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	users, err := h.Repo.List(limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// GET /admin/users/:id
func (h *UserController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid user id")
		return
	}
	user, err := h.Repo.FindByID(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /admin/users/:id
func (h *UserController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
