package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"uniqueIndex;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	Reviews      []Review      `json:"-"`
	CartItems    []CartItem    `json:"-"`
	OrderedItems []OrderedItem `json:"-"`
}
