package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Amount    decimal.Decimal `gorm:"type:numeric" json:"amount"`
	Reference string          `json:"reference"` // gateway intent reference
	PaidAt    *time.Time      `json:"paidAt,omitempty"`

	// card capture happens at the gateway; only display fields are kept
	CardHolderName string `json:"cardHolderName"`
	CardLast4      string `json:"cardLast4"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
