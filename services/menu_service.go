package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
)

type MenuService struct {
	Repo         *repository.MenuRepository
	CategoryRepo *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, catRepo *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, CategoryRepo: catRepo}
}

func (s *MenuService) List(categoryID uint) ([]entity.MenuItem, error) {
	if categoryID != 0 {
		return s.Repo.ListByCategory(categoryID)
	}
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.GetByID(id)
}

func (s *MenuService) GetByName(name string) (*entity.MenuItem, error) {
	return s.Repo.GetByName(name)
}

type MenuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable *bool           `json:"isAvailable"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, apperr.Invalidf("price %s", in.Price)
	}
	ok, err := s.CategoryRepo.Exists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("category %d", in.CategoryID)
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	m := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		IsAvailable: available,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Update(id uint, updates map[string]any) error {
	if v, ok := updates["price"]; ok {
		if d, ok := v.(decimal.Decimal); ok && d.IsNegative() {
			return apperr.Invalidf("price %s", d)
		}
	}
	return s.Repo.Update(id, updates)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	return s.Repo.SetAvailability(id, available)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
