package entity

import (
	"gorm.io/gorm"
)

type ContactMessage struct {
	gorm.Model
	FullName string `gorm:"size:100;not null" json:"fullName"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Subject  string `gorm:"size:100" json:"subject"`
	Message  string `gorm:"size:500;not null" json:"message"`
}
