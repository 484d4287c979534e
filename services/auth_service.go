package services

import (
	"fmt"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles register/login business logic.
type AuthService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	cartRepo  *repository.CartRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, carts *repository.CartRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		userRepo:  users,
		cartRepo:  carts,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates the user and their cart together; a user without a cart
// cannot check out, so the two rows are born in the same transaction.
func (s *AuthService) Register(email, password, firstName, lastName, phone, address string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflictf("email %s already registered", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Address:     strings.TrimSpace(address),
		Role:        "customer",
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		return s.cartRepo.CreateCart(tx, &entity.Cart{UserID: user.ID})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a JWT. Unknown email and wrong
// password report the same unauthorized kind.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
