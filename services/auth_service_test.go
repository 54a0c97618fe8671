package services

import (
	"context"
	"testing"
	"time"

	"jasit-store/libs"
	"jasit-store/models"
	"jasit-store/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuth(t *testing.T, withRedis bool) (*AuthService, *utils.TokenIssuer, *libs.TokenDenylist) {
	t.Helper()
	var client *redis.Client
	if withRedis {
		mr := miniredis.RunT(t)
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
	}
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	denylist := libs.NewTokenDenylist(client)
	return NewAuthService(newFakeUserStore(), tokens, denylist, zap.NewNop()), tokens, denylist
}

func register(t *testing.T, svc *AuthService) *models.LoginResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    " Dewi@Jasit.co.id ",
		Password: "rahasia123",
		FullName: "Dewi Lestari",
		Phone:    "0811",
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_Register(t *testing.T) {
	svc, tokens, _ := newTestAuth(t, false)

	resp := register(t, svc)
	assert.Equal(t, "dewi@jasit.co.id", resp.User.Email)
	assert.Equal(t, models.RoleCustomer, resp.User.Role)
	assert.Equal(t, "Dewi Lestari", resp.User.FullName)

	principal, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, principal.UserID)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuth(t, false)
	register(t, svc)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "dewi@jasit.co.id", Password: "x12345", FullName: "Dewi"})
	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestAuth(t, false)
	register(t, svc)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "DEWI@jasit.co.id", Password: "rahasia123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "dewi@jasit.co.id", Password: "salah"})
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "siapa@jasit.co.id", Password: "rahasia123"})
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
	assert.Equal(t, "Email atau password salah", utils.UserMessage(err, ""))
}

func TestAuthService_Signout(t *testing.T) {
	svc, tokens, denylist := newTestAuth(t, true)
	resp := register(t, svc)

	principal, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	require.NoError(t, svc.Signout(context.Background(), principal))

	revoked, err := denylist.IsRevoked(context.Background(), principal.TokenID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_Signout_WithoutRedis(t *testing.T) {
	svc, _, _ := newTestAuth(t, false)

	assert.NoError(t, svc.Signout(context.Background(), &models.Principal{TokenID: "jti", Expires: time.Now().Add(time.Hour)}))
	assert.NoError(t, svc.Signout(context.Background(), nil))
}
