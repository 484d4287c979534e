package repository

import (
	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) ListForMenuItem(menuItemID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("menu_item_id = ?", menuItemID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ReviewRepository) GetByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &rev, nil
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return apperr.FromGorm(r.DB.Create(rev).Error)
}

func (r *ReviewRepository) Update(id, userID uint, updates map[string]any) error {
	// only the author may touch their review
	res := r.DB.Model(&entity.Review{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Review{}, id)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
