package services

import (
	"context"
	"errors"
	"strings"

	"jasit-store/libs"
	"jasit-store/models"
	"jasit-store/utils"

	"go.uber.org/zap"
)

type UserStore interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.UserProfile) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error)
}

type AuthService struct {
	users    UserStore
	tokens   *utils.TokenIssuer
	denylist *libs.TokenDenylist
	log      *zap.Logger
}

func NewAuthService(users UserStore, tokens *utils.TokenIssuer, denylist *libs.TokenDenylist, log *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, denylist: denylist, log: log}
}

func invalidCredentials() error {
	return utils.Unauthorized("Email atau password salah")
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    normalizeEmail(req.Email),
		Password: hashedPassword,
		Role:     models.RoleCustomer,
	}
	profile := &models.UserProfile{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
	}
	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Int("user_id", user.ID))
	return s.issue(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, utils.ErrNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, invalidCredentials()
	}

	return s.issue(ctx, user)
}

// Signout revokes the caller's token until it would have expired.
func (s *AuthService) Signout(ctx context.Context, principal *models.Principal) error {
	if principal == nil {
		return nil
	}
	if !s.denylist.Enabled() {
		s.log.Debug("token denylist disabled, signout is client side only")
		return nil
	}
	return s.denylist.Revoke(ctx, principal.TokenID, principal.Expires)
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*models.LoginResponse, error) {
	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.users.GetUserWithProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
