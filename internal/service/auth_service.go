package service

import (
	"context"
	"errors"

	"fixando/internal/models"
	"fixando/internal/repository"
	"fixando/internal/token"
	"fixando/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, credential checks and session
// revocation.
type AuthService struct {
	userRepo       repository.UserRepository
	revocationRepo repository.RevocationRepository
	tokens         *token.Service
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func NewAuthService(
	userRepo repository.UserRepository,
	revocationRepo repository.RevocationRepository,
	tokens *token.Service,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		tokens:         tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}
	// The unique index decides the winner when two registrations race;
	// the loser surfaces as a duplicate-key error, never a second row.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("Email already registered")
		}
		return nil, err
	}

	return user, nil
}

// Login never distinguishes an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, *models.User, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, models.NewValidationError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", nil, models.NewValidationError("Invalid credentials")
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}
	return signed, user, nil
}

// Logout records the presented token in the revocation ledger. The entry
// expires with the token itself, so the ledger never needs to outlive it.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return models.NewValidationError("Token is required")
	}

	// Every issued token carries an expiry; one without it cannot get a
	// bounded ledger entry and is refused outright.
	expiresAt, ok := s.tokens.DecodeExpiry(rawToken)
	if !ok {
		return models.NewValidationError("Token has no expiry")
	}

	return s.revocationRepo.Revoke(ctx, rawToken, expiresAt)
}

// IsRevoked reports whether the token has been logged out.
func (s *AuthService) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	return s.revocationRepo.IsRevoked(ctx, rawToken)
}
