package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"` // alternative to MenuItemID
	Qty        int    `json:"qty"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, decimal.Decimal, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, it := range c.Items {
		subtotal = subtotal.Add(it.Price)
	}
	return c, subtotal, nil
}

// Add merges a menu item into the user's cart. A repeat add of the same item
// bumps quantity and reprices the line instead of creating a second row.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty < 0 {
		return apperr.Invalidf("qty %d", in.Qty)
	}
	if in.Qty == 0 {
		in.Qty = 1
	}

	m, err := s.resolveMenuItem(in)
	if err != nil {
		return err
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, m.ID, in.Qty, m.Price)
	})
}

// AddToCart is the cart-id call path used when the caller already holds the
// cart rather than the user.
func (s *CartService) AddToCart(cartID uint, in *AddToCartIn) error {
	if in.Qty < 0 {
		return apperr.Invalidf("qty %d", in.Qty)
	}
	if in.Qty == 0 {
		in.Qty = 1
	}

	if _, err := s.CartRepo.GetCart(cartID); err != nil {
		return err
	}
	m, err := s.resolveMenuItem(in)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cartID, m.ID, in.Qty, m.Price)
	})
}

func (s *CartService) resolveMenuItem(in *AddToCartIn) (*entity.MenuItem, error) {
	if in.MenuItemID != 0 {
		return s.MenuRepo.GetBasics(in.MenuItemID)
	}
	if in.Name != "" {
		return s.MenuRepo.GetByName(in.Name)
	}
	return nil, apperr.Invalidf("menuItemId or name required")
}

// GetItems lists a cart's lines by cart id. The cart must exist; an empty cart
// returns an empty slice.
func (s *CartService) GetItems(cartID uint) ([]entity.CartItem, error) {
	if _, err := s.CartRepo.GetCart(cartID); err != nil {
		return nil, err
	}
	return s.CartRepo.GetItems(cartID)
}

// RemoveItem is tolerant: removing a pair that is not in the cart, or from a
// user who never got a cart, is a no-op.
func (s *CartService) RemoveItem(userID, menuItemID uint) error {
	c, err := s.CartRepo.FindByUser(userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, c.ID, menuItemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	c, err := s.CartRepo.FindByUser(userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, c.ID)
	})
}
