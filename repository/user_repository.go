package repository

import (
	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CartIDByUserID resolves the user's cart, the lookup the
// checkout path starts from.
func (r *UserRepository) CartIDByUserID(userID uint) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.Cart{}).
		Select("id").Where("user_id = ?", userID).
		First(&row).Error
	if err != nil {
		return 0, apperr.FromGorm(err)
	}
	return row.ID, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(limit int) ([]entity.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.User
	err := r.DB.Order("id ASC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *UserRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.User{}, id)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
