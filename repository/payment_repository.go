package repository

import (
	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) GetByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &p, nil
}

func (r *PaymentRepository) ListForUser(userID uint) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Payment{}, id)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
