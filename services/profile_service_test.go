package services

import (
	"context"
	"testing"

	"jasit-store/models"
	"jasit-store/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile(t *testing.T) (*ProfileService, *fakeUserStore, int) {
	t.Helper()
	users := newFakeUserStore()
	hash, err := utils.HashPassword("lama123")
	require.NoError(t, err)

	user := &models.User{Email: "adi@jasit.co.id", Password: hash, Role: models.RoleCustomer}
	require.NoError(t, users.CreateWithProfile(context.Background(), user,
		&models.UserProfile{FullName: "Adi Nugroho", Phone: "0813", Address: "Bandung"}))
	return NewProfileService(users), users, user.ID
}

func TestProfileService_Update_KeepsUnsentFields(t *testing.T) {
	svc, users, id := newTestProfile(t)

	updated, err := svc.Update(context.Background(), id, models.UpdateProfileRequest{Company: " CV Teknologi "})
	require.NoError(t, err)

	assert.Equal(t, "CV Teknologi", updated.Company)
	assert.Equal(t, "Adi Nugroho", updated.FullName)
	assert.Equal(t, "Bandung", updated.Address)
	assert.Equal(t, "CV Teknologi", users.profiles[id].Company)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	svc, _, _ := newTestProfile(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestProfileService_ChangePassword(t *testing.T) {
	svc, users, id := newTestProfile(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, id, models.ChangePasswordRequest{OldPassword: "lama123", NewPassword: "baru456", ConfirmPassword: "baru456"})
	require.NoError(t, err)

	user, err := users.FindByID(ctx, id)
	require.NoError(t, err)
	ok, err := utils.VerifyPassword(user.Password, "baru456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProfileService_ChangePassword_Rejects(t *testing.T) {
	svc, _, id := newTestProfile(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.ChangePasswordRequest
		msg  string
	}{
		{"wrong old", models.ChangePasswordRequest{OldPassword: "keliru", NewPassword: "baru456", ConfirmPassword: "baru456"}, "Password lama salah"},
		{"mismatch", models.ChangePasswordRequest{OldPassword: "lama123", NewPassword: "baru456", ConfirmPassword: "baru789"}, "Konfirmasi password tidak cocok"},
		{"too short", models.ChangePasswordRequest{OldPassword: "lama123", NewPassword: "abc", ConfirmPassword: "abc"}, "Password baru minimal 6 karakter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(ctx, id, tt.req)
			require.ErrorIs(t, err, utils.ErrInvalidInput)
			assert.Equal(t, tt.msg, utils.UserMessage(err, ""))
		})
	}
}
