package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
	"github.com/jwseo/maechuldash-backend/pkg/util"
)

var ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다")

// LoginResult 로그인 응답
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        *model.User `json:"user"`
}

// AuthService 대시보드 사용자 인증 서비스
type AuthService interface {
	Login(email, password string) (*LoginResult, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	expiry    time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, expiry time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		expiry:    expiry,
	}
}

func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to look up user", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: wrong password", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken(user.ID, user.Email, string(user.Role), s.jwtSecret, s.expiry)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return nil, err
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return &LoginResult{AccessToken: token, User: user}, nil
}
