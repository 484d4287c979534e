package controllers

import (
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ Svc *services.ReportService }

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Svc: s}
}

// GET /admin/reports/summary
func (h *ReportController) Summary(c *gin.Context) {
	out, err := h.Svc.Summary()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/reports/sales/categories/:id
func (h *ReportController) SalesByCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid category id")
		return
	}
	total, err := h.Svc.SalesByCategory(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"categoryId": id, "total": total})
}

// GET /admin/reports/sales/categories?name=
func (h *ReportController) SalesByCategoryName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		resp.BadRequest(c, "name required")
		return
	}
	total, err := h.Svc.SalesByCategoryName(name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"category": name, "total": total})
}

// GET /admin/reports/sales/months?month=YYYY-MM
func (h *ReportController) SalesByMonth(c *gin.Context) {
	month, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		resp.BadRequest(c, "month must be YYYY-MM")
		return
	}
	total, err := h.Svc.SalesByMonth(month.Year(), month.Month())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"month": c.Query("month"), "total": total})
}

// GET /admin/reports/categories
func (h *ReportController) CategoryNames(c *gin.Context) {
	names, err := h.Svc.CategoryNames()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": names})
}
