package repository

import (
	"time"

	"backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportRepository reads the figures behind the admin dashboard. It hands
// back raw prices rather than SQL sums; money totals are added up by the
// caller in decimal arithmetic.
type ReportRepository struct{ DB *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{DB: db} }

// CategorySales returns the snapshot prices of every ordered item whose menu
// item belongs to the category, across all live orders.
func (r *ReportRepository) CategorySales(categoryID uint) ([]decimal.Decimal, error) {
	var prices []decimal.Decimal
	err := r.DB.Model(&entity.OrderedItem{}).
		Joins("JOIN menu_items ON menu_items.id = ordered_items.menu_item_id").
		Joins("JOIN orders ON orders.id = ordered_items.order_id").
		Where("menu_items.category_id = ? AND orders.deleted_at IS NULL", categoryID).
		Pluck("ordered_items.price", &prices).Error
	return prices, err
}

// OrderTotalsBetween returns the stored totals of orders created in
// [from, to).
func (r *ReportRepository) OrderTotalsBetween(from, to time.Time) ([]decimal.Decimal, error) {
	var totals []decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Pluck("total_price", &totals).Error
	return totals, err
}

func (r *ReportRepository) CountUsers() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountMenuItems() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountCategories() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Category{}).Count(&n).Error
	return n, err
}

func (r *ReportRepository) CategoryNames() ([]string, error) {
	var names []string
	err := r.DB.Model(&entity.Category{}).Order("id ASC").Pluck("name", &names).Error
	return names, err
}
