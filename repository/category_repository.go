package repository

import (
	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) GetByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &c, nil
}

func (r *CategoryRepository) GetByName(name string) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return apperr.FromGorm(r.DB.Create(c).Error)
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Category{}, id)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
