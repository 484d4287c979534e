package services

import (
	"time"

	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
)

// ReportService computes the admin dashboard figures. Sales totals are summed
// here in decimal so the reports agree exactly with the order totals written
// at checkout.
type ReportService struct {
	Repo         *repository.ReportRepository
	CategoryRepo *repository.CategoryRepository
}

func NewReportService(repo *repository.ReportRepository, catRepo *repository.CategoryRepository) *ReportService {
	return &ReportService{Repo: repo, CategoryRepo: catRepo}
}

type ReportSummary struct {
	Users      int64 `json:"users"`
	MenuItems  int64 `json:"menuItems"`
	Categories int64 `json:"categories"`
}

func (s *ReportService) Summary() (*ReportSummary, error) {
	users, err := s.Repo.CountUsers()
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.CountMenuItems()
	if err != nil {
		return nil, err
	}
	cats, err := s.Repo.CountCategories()
	if err != nil {
		return nil, err
	}
	return &ReportSummary{Users: users, MenuItems: items, Categories: cats}, nil
}

// SalesByCategory sums the ordered-item snapshots for one category.
func (s *ReportService) SalesByCategory(categoryID uint) (decimal.Decimal, error) {
	ok, err := s.CategoryRepo.Exists(categoryID)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, apperr.NotFoundf("category %d", categoryID)
	}
	prices, err := s.Repo.CategorySales(categoryID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p)
	}
	return total, nil
}

func (s *ReportService) SalesByCategoryName(name string) (decimal.Decimal, error) {
	cat, err := s.CategoryRepo.GetByName(name)
	if err != nil {
		return decimal.Zero, err
	}
	return s.SalesByCategory(cat.ID)
}

// SalesByMonth sums the stored order totals for one calendar month.
func (s *ReportService) SalesByMonth(year int, month time.Month) (decimal.Decimal, error) {
	if year < 1 || month < time.January || month > time.December {
		return decimal.Zero, apperr.Invalidf("month %d-%d", year, month)
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	totals, err := s.Repo.OrderTotalsBetween(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum, nil
}

func (s *ReportService) CategoryNames() ([]string, error) {
	return s.Repo.CategoryNames()
}
