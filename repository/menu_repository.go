package repository

import (
	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ?", categoryID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &m, nil
}

func (r *MenuRepository) GetByName(name string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("name = ?", name).First(&m).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &m, nil
}

// Basics for pricing a cart line: id, price, availability only.
func (r *MenuRepository) GetBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, price, is_available").First(&m, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return apperr.FromGorm(r.DB.Create(m).Error)
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	return r.Update(id, map[string]any{"is_available": available})
}

func (r *MenuRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return apperr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
