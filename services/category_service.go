package services

import (
	"backend/entity"
	"backend/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	return s.Repo.GetByID(id)
}

func (s *CategoryService) Create(name, description string) (*entity.Category, error) {
	c := &entity.Category{Name: name, Description: description}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(id uint, updates map[string]any) error {
	return s.Repo.Update(id, updates)
}

func (s *CategoryService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
