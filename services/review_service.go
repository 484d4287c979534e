package services

import (
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type ReviewService struct {
	Repo     *repository.ReviewRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
}

func NewReviewService(repo *repository.ReviewRepository, menuRepo *repository.MenuRepository, userRepo *repository.UserRepository) *ReviewService {
	return &ReviewService{Repo: repo, MenuRepo: menuRepo, UserRepo: userRepo}
}

func (s *ReviewService) ListForMenuItem(menuItemID uint) ([]entity.Review, error) {
	if _, err := s.MenuRepo.GetByID(menuItemID); err != nil {
		return nil, err
	}
	return s.Repo.ListForMenuItem(menuItemID)
}

type ReviewIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Message    string `json:"message"`
}

func (s *ReviewService) Create(userID uint, in *ReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Invalidf("rating %d", in.Rating)
	}
	if _, err := s.MenuRepo.GetByID(in.MenuItemID); err != nil {
		return nil, err
	}
	ok, err := s.UserRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("user %d", userID)
	}

	rev := &entity.Review{
		Rating:     in.Rating,
		Message:    in.Message,
		ReviewDate: time.Now(),
		UserID:     userID,
		MenuItemID: in.MenuItemID,
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) Update(id, userID uint, rating int, message string) error {
	if rating < 1 || rating > 5 {
		return apperr.Invalidf("rating %d", rating)
	}
	return s.Repo.Update(id, userID, map[string]any{
		"rating":  rating,
		"message": message,
	})
}

func (s *ReviewService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
