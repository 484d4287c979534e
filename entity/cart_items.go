package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// At most one row per (cart, menu item); adds merge into the existing row.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_menu,priority:1" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_menu,priority:2" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric" json:"price"` // quantity x unit price at last mutation
}
