package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/leon37/WishLedger/internal/model"
	"github.com/leon37/WishLedger/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken 注册冲突，换个用户名才可能成功
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials 账号不存在和密码错误统一报这个，防止探测用户名
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrWeakPassword 密码太短
	ErrWeakPassword = errors.New("password too short")
)

type AuthService struct {
	userRepo       *repository.UserRepository
	hasher         *PasswordHasher
	tokens         *TokenManager
	minPasswordLen int
}

func NewAuthService(userRepo *repository.UserRepository, hasher *PasswordHasher, tokens *TokenManager, minPasswordLen int) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		hasher:         hasher,
		tokens:         tokens,
		minPasswordLen: minPasswordLen,
	}
}

// Register 注册逻辑。返回创建好的用户 (带库里分配的 ID)。
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if len(password) < s.minPasswordLen {
		return nil, ErrWeakPassword
	}

	// 1. 密码加密
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	// 2. 落库。不做先查后插：并发注册同名用户时只有唯一索引靠得住，
	//    冲突由 ErrDuplicatedKey 报出来。
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return user, nil
}

// Login 登录逻辑，返回 Token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	// 1. 查用户
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials // 模糊报错为了安全
	}

	// 2. 比对密码
	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	// 3. 生成 JWT
	return s.tokens.Issue(user.Username)
}
