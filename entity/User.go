package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	PostCode    string `json:"postCode"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Relations, preload only when needed
	Cart     *Cart     `gorm:"foreignKey:UserID" json:"-"`
	Orders   []Order   `json:"-"`
	Reviews  []Review  `json:"-"`
	Payments []Payment `json:"-"`
}
