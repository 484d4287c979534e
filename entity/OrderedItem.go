package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Snapshot of a CartItem taken at checkout; never touched by later
// menu price or availability changes.
type OrderedItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_menu,priority:1" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_menu,priority:2" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric" json:"price"`
}
