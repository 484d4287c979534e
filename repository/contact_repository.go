package repository

import (
	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type ContactRepository struct{ DB *gorm.DB }

func NewContactRepository(db *gorm.DB) *ContactRepository { return &ContactRepository{DB: db} }

func (r *ContactRepository) Create(m *entity.ContactMessage) error {
	return apperr.FromGorm(r.DB.Create(m).Error)
}

func (r *ContactRepository) List(limit int) ([]entity.ContactMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.ContactMessage
	err := r.DB.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *ContactRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.ContactMessage{}, id)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
