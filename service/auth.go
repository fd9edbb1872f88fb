package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/vo"
	"github.com/Xushengqwer/image_service/myErrors"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// bcryptCost 固定为 12，高于库默认值。
const bcryptCost = 12

// AuthService 定义了注册与登录的业务接口。
type AuthService interface {
	// Register 注册新用户。
	// - 用户名或邮箱已被占用时返回 ErrConflict。
	// - 注册成功即视为登录，直接返回令牌。
	Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResultVO, error)

	// Login 校验用户名密码并签发 JWT。
	// - 用户不存在与密码错误统一返回 ErrInvalidCredentials，不泄露哪一步失败。
	Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResultVO, error)

	// GetCurrentUser 按令牌中的用户 ID 取用户信息。
	GetCurrentUser(ctx context.Context, userID uint64) (*vo.UserVO, error)
}

// ErrInvalidCredentials 登录失败的统一业务错误。
var ErrInvalidCredentials = errors.New("用户名或密码错误")

type authService struct {
	userRepo mysql.UserRepository
	jwtCfg   appConfig.JWTConfig
	logger   *core.ZapLogger
}

// NewAuthService 是 authService 的构造函数。
func NewAuthService(userRepo mysql.UserRepository, jwtCfg appConfig.JWTConfig, logger *core.ZapLogger) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResultVO, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		s.logger.Error("检查用户名/邮箱占用失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: 用户名或邮箱已被注册", myErrors.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &entities.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	token, err := s.signToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("新用户注册成功", zap.Uint64("userID", user.ID), zap.String("username", user.Username))
	return &vo.AuthResultVO{Token: token, User: vo.MapUserToVO(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResultVO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &vo.AuthResultVO{Token: token, User: vo.MapUserToVO(user)}, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID uint64) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	userVO := vo.MapUserToVO(user)
	return &userVO, nil
}

func (s *authService) signToken(userID uint64, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(s.jwtCfg.ExpireHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		s.logger.Error("签发 JWT 失败", zap.Uint64("userID", userID), zap.Error(err))
		return "", err
	}
	return signed, nil
}
