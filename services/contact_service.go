package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type ContactService struct {
	Repo *repository.ContactRepository
}

func NewContactService(repo *repository.ContactRepository) *ContactService {
	return &ContactService{Repo: repo}
}

type ContactIn struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject"`
	Message  string `json:"message" binding:"required"`
}

func (s *ContactService) Create(in *ContactIn) (*entity.ContactMessage, error) {
	if len(in.Message) > 500 {
		return nil, apperr.Invalidf("message too long")
	}
	m := &entity.ContactMessage{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Subject:  strings.TrimSpace(in.Subject),
		Message:  in.Message,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContactService) List(limit int) ([]entity.ContactMessage, error) {
	return s.Repo.List(limit)
}

func (s *ContactService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
