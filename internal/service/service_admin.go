package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/store"
	"github.com/MKhiriev/go-auth-shell/models"
)

type adminService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

func (s *adminService) DeactivateUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.SetActive(ctx, userID, false); err != nil {
		log.Err(err).Int64("id", userID).Msg("deactivating user failed")
		return fmt.Errorf("deactivating user failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("user deactivated")
	return nil
}

// ChangeRole returns a wrapped store.ErrUserNotFound when no user has userID.
func (s *adminService) ChangeRole(ctx context.Context, userID int64, roleName string) error {
	log := logger.FromContext(ctx)

	if roleName == "" {
		return ErrInvalidDataProvided
	}

	// SQLite enforces foreign keys only when the DSN enables them.
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if _, err := s.userRepository.AttachRole(ctx, userID, roleName); err != nil {
		log.Err(err).Int64("id", userID).Str("role", roleName).Msg("attaching role failed")
		return fmt.Errorf("attaching role failed: %w", err)
	}

	log.Info().Int64("id", userID).Str("role", roleName).Msg("user role updated")
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("deleting user failed")
		return fmt.Errorf("deleting user failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("user deleted")
	return nil
}
