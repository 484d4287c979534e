package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TotalPrice decimal.Decimal `gorm:"type:numeric" json:"totalPrice"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when user detail is needed

	// nil until a payment is recorded for the order
	PaymentID *uint    `json:"paymentId,omitempty"`
	Payment   *Payment `json:"-"`

	Items []OrderedItem `json:"-"` // preload only on detail
}
