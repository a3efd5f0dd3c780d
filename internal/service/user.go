package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context, caller domain.Identity) ([]domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.Forbidden("Admin access required")
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, domain.Internal("Failed to load users", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, caller domain.Identity, id int32, upd domain.UserUpdate) (*domain.User, error) {
	if id != caller.ID && !caller.IsAdmin() {
		return nil, domain.Forbidden("You can only update your own account")
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("User not found")
		}
		return nil, domain.Internal("Failed to load user", err)
	}

	// Patrons cannot promote themselves.
	if upd.Role != nil && !caller.IsAdmin() {
		upd.Role = nil
	}
	if upd.Role != nil && *upd.Role != domain.UserRoleAdmin && *upd.Role != domain.UserRolePatron {
		return nil, domain.Invalid("Unknown role %q", *upd.Role)
	}

	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.Internal("Failed to hash password", err)
		}
		hashed := string(hash)
		upd.Password = &hashed
	}

	if err := s.userRepo.Update(ctx, id, upd); err != nil {
		return nil, domain.Internal("Failed to update user", err)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("Failed to load updated user", err)
	}
	logger.Info("User updated", "user_id", id, "caller_id", caller.ID)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, caller domain.Identity, id int32) error {
	if !caller.IsAdmin() {
		return domain.Forbidden("Admin access required")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("User not found")
		}
		return domain.Internal("Failed to load user", err)
	}

	if user.Role == domain.UserRoleAdmin {
		admins, err := s.userRepo.CountAdmins(ctx)
		if err != nil {
			return domain.Internal("Failed to count admins", err)
		}
		if admins <= 1 {
			return domain.Conflict("Cannot delete the last admin user")
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return domain.Internal("Failed to delete user", err)
	}
	logger.Info("User deleted", "user_id", id, "admin_id", caller.ID)
	return nil
}
