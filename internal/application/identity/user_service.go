package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/identity"
	"github.com/h2ogo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles profile management
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser returns the public profile of a user
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}
	dto := ToUserDTO(user)
	return &dto, nil
}

// UpdateProfile updates the editable fields of a profile
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	if err := user.UpdateProfile(input.Name, input.Phone, input.Address); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}

	s.logger.Info("Profile updated", zap.String("user_id", input.UserID.String()))

	dto := ToUserDTO(user)
	return &dto, nil
}

// ChangePassword verifies the current password and sets a new one
func (s *UserService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "User not found")
	}

	if !user.VerifyPassword(input.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	if err := user.ChangePassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save password change", zap.Error(err))
		return shared.ErrStorageUnavailable
	}

	s.logger.Info("Password changed", zap.String("user_id", input.UserID.String()))
	return nil
}
