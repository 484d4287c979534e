package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int       `json:"rating"`
	Message    string    `json:"message"`
	ReviewDate time.Time `json:"reviewDate"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
