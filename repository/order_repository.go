package repository

import (
	"backend/entity"
	"backend/pkg/apperr"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- writes (checkout transaction scope) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderedItem(tx *gorm.DB, oi *entity.OrderedItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) AttachPayment(tx *gorm.DB, orderID, paymentID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_id", paymentID).Error
}

// ---------------- reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderedItem, error) {
	var items []entity.OrderedItem
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

// ListOrderedItemsForUser returns the snapshot rows across all of the user's
// orders, flattened into the per-user history view.
func (r *OrderRepository) ListOrderedItemsForUser(userID uint) ([]entity.OrderedItem, error) {
	var items []entity.OrderedItem
	err := r.DB.
		Joins("JOIN orders ON orders.id = ordered_items.order_id").
		Where("orders.user_id = ? AND orders.deleted_at IS NULL", userID).
		Order("ordered_items.id ASC").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) ListAllOrderedItems() ([]entity.OrderedItem, error) {
	var items []entity.OrderedItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

// TotalPrice reads the stored total written at checkout; that column is the
// canonical figure, never recomputed from the item rows.
func (r *OrderRepository) TotalPrice(orderID uint) (decimal.Decimal, error) {
	var row struct{ TotalPrice decimal.Decimal }
	err := r.DB.Model(&entity.Order{}).
		Select("total_price").Where("id = ?", orderID).
		First(&row).Error
	if err != nil {
		return decimal.Zero, apperr.FromGorm(err)
	}
	return row.TotalPrice, nil
}

// ---------------- administrative ----------------

// Raw field overwrite; ordered items are never recomputed from here.
func (r *OrderRepository) UpdateOrder(orderID uint, updates map[string]any) error {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) DeleteOrder(orderID uint) error {
	res := r.DB.Delete(&entity.Order{}, orderID)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
