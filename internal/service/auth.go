package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string, role domain.UserRole, caller *domain.Identity) (*domain.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", domain.Invalid("Username, email, and password are required")
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, "", domain.Conflict("Username already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", domain.Internal("Failed to check username", err)
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.Conflict("Email already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", domain.Internal("Failed to check email", err)
	}

	if role == "" {
		role = domain.UserRolePatron
	}
	// Only an authenticated admin may mint another admin.
	if role == domain.UserRoleAdmin && (caller == nil || !caller.IsAdmin()) {
		role = domain.UserRolePatron
	}
	if role != domain.UserRoleAdmin && role != domain.UserRolePatron {
		return nil, "", domain.Invalid("Unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", domain.Internal("Failed to hash password", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", domain.Internal("Failed to create user", err)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", domain.Internal("Failed to issue token", err)
	}

	logger.Info("User registered", "user_id", user.ID, "username", username, "role", role)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.Invalid("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.Unauthorized("Invalid credentials")
		}
		return nil, "", domain.Internal("Failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", domain.Internal("Failed to issue token", err)
	}

	logger.Info("User logged in", "user_id", user.ID, "username", username)
	return user, token, nil
}
