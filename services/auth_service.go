package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vee-grants/vee-api/model"
	"github.com/vee-grants/vee-api/utils/auth"
	"gorm.io/gorm"
)

// AuthService verifies credentials and registers users
type AuthService struct {
	db         *gorm.DB
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{db: db, tokens: tokens, bcryptCost: bcryptCost}
}

// Login returns an access token for valid credentials.
// Unknown emails and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrIncorrectCredentials
	}
	if err != nil {
		return "", err
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Register creates a user with a hashed password. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailExists
	}

	hashedPassword, err := auth.HashPasswordWithCost(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailExists
		}
		return err
	}

	return nil
}
