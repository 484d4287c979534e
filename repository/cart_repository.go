package repository

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) GetCart(cartID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.DB.First(&c, cartID).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &c, nil
}

// Returns the user's cart with items and their resolved menu items. A user
// without a cart row gets an empty cart back rather than an error so the
// frontend can always render.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		Preload("Items.MenuItem").
		First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromGorm(err)
	}
	return &entity.Cart{UserID: userID}, nil
}

func (r *CartRepository) FindByUser(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	c, err := r.FindByUser(userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	created := entity.Cart{UserID: userID}
	if err := r.DB.Create(&created).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &created, nil
}

func (r *CartRepository) CreateCart(tx *gorm.DB, cart *entity.Cart) error {
	return tx.Create(cart).Error
}

// UpsertItem merges a line into the cart. The quantity increment runs as one
// upsert statement inside the database so two concurrent adds on the same
// (cart, menu item) pair cannot lose an update; the price is then rewritten
// from the merged quantity in exact decimal arithmetic, still inside the
// caller's transaction. Multiplying in SQL would let sqlite do the money
// math in floating point.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, menuItemID uint, qty int, unitPrice decimal.Decimal) error {
	row := entity.CartItem{
		CartID:     cartID,
		MenuItemID: menuItemID,
		Quantity:   qty,
		Price:      unitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return apperr.FromGorm(err)
	}

	var merged struct{ Quantity int64 }
	err = tx.Model(&entity.CartItem{}).
		Select("quantity").
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		First(&merged).Error
	if err != nil {
		return apperr.FromGorm(err)
	}

	err = tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Update("price", unitPrice.Mul(decimal.NewFromInt(merged.Quantity))).Error
	return apperr.FromGorm(err)
}

// Insertion-ordered; empty slice (not an error) for an empty or unknown cart.
func (r *CartRepository) GetItems(cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("cart_id = ?", cartID).
		Preload("MenuItem").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.FromGorm(err)
	}
	return items, nil
}

// GetItemsForUpdate reads a cart's lines inside the given transaction, used by
// checkout so the snapshot and the order writes share one isolation scope.
func (r *CartRepository) GetItemsForUpdate(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error
	return items, err
}

// Idempotent: deleting an absent pair is a no-op. Cart lines are transient,
// so the delete is a hard one; a soft-deleted row would collide with the
// (cart_id, menu_item_id) unique index on the next add.
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, menuItemID uint) error {
	return tx.Unscoped().
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Delete(&entity.CartItem{}).Error
}

// ClearCart empties the cart's lines and leaves the cart row in place.
func (r *CartRepository) ClearCart(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
