package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/myErrors"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)
	userRepo := mysql.NewUserRepository(db)
	return NewAuthService(userRepo, appConfig.JWTConfig{
		Secret:      "test-secret",
		ExpireHours: 1,
	}, newTestLogger(t))
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	registerReq := &dto.RegisterRequest{
		Username: "alice_tester",
		Email:    "alice@example.com",
		Password: "super-secret",
	}

	result, err := svc.Register(ctx, registerReq)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice_tester", result.User.Username)
	assert.NotZero(t, result.User.ID)

	t.Run("令牌携带正确声明", func(t *testing.T) {
		token, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.EqualValues(t, result.User.ID, claims["userId"])
		assert.Equal(t, "alice_tester", claims["username"])
	})

	t.Run("重复用户名报冲突", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Username: "alice_tester",
			Email:    "other@example.com",
			Password: "whatever",
		})
		assert.True(t, errors.Is(err, myErrors.ErrConflict))
	})

	t.Run("重复邮箱报冲突", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Username: "bob_tester",
			Email:    "alice@example.com",
			Password: "whatever",
		})
		assert.True(t, errors.Is(err, myErrors.ErrConflict))
	})

	t.Run("正确口令登录成功", func(t *testing.T) {
		loginResult, err := svc.Login(ctx, &dto.LoginRequest{
			Username: "alice_tester",
			Password: "super-secret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, loginResult.Token)
		assert.Equal(t, result.User.ID, loginResult.User.ID)
	})

	t.Run("错误口令报无效凭据", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Username: "alice_tester",
			Password: "wrong-password",
		})
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("不存在的用户同样报无效凭据", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Username: "nobody_here",
			Password: "whatever",
		})
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "carol_tester",
		Email:    "carol@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol_tester", user.Username)
	assert.Equal(t, "carol@example.com", user.Email)

	_, err = svc.GetCurrentUser(ctx, 99999)
	assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
}
