package services

import (
	"context"
	"strings"

	"jasit-store/models"
	"jasit-store/utils"
)

type ProfileStore interface {
	FindByID(ctx context.Context, id int) (*models.User, error)
	GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error)
	UpsertProfile(ctx context.Context, profile *models.UserProfile) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
}

type ProfileService struct {
	users ProfileStore
}

func NewProfileService(users ProfileStore) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Get(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	return s.users.GetUserWithProfile(ctx, userID)
}

// Update overwrites the profile fields that were sent non-empty and keeps
// the rest.
func (s *ProfileService) Update(ctx context.Context, userID int, req models.UpdateProfileRequest) (*models.UserWithProfile, error) {
	current, err := s.users.GetUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:   userID,
		FullName: pick(req.FullName, current.FullName),
		Phone:    pick(req.Phone, current.Phone),
		Company:  pick(req.Company, current.Company),
		Address:  pick(req.Address, current.Address),
	}
	if err := s.users.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}

	current.FullName = profile.FullName
	current.Phone = profile.Phone
	current.Company = profile.Company
	current.Address = profile.Address
	return current, nil
}

func (s *ProfileService) ChangePassword(ctx context.Context, userID int, req models.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return utils.InvalidInput("Konfirmasi password tidak cocok")
	}
	if !utils.PasswordLongEnough(req.NewPassword) {
		return utils.InvalidInput("Password baru minimal 6 karakter")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return utils.InvalidInput("Password lama salah")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hashed)
}

func pick(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
