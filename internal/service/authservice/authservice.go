package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/starsbot/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Admins interface {
	IsAdmin(userID int64) bool
}

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = time.Hour

// Service logs bot admins into the http admin api.
type Service struct {
	admins       Admins
	passwordHash string
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	now          func() time.Time
}

func New(admins Admins, passwordHash string, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		admins:       admins,
		passwordHash: passwordHash,
		hashService:  hashService,
		jwtService:   jwtService,
		now:          time.Now,
	}
}

func (s *Service) Authenticate(_ context.Context, adminID int64, password string) error {
	if !s.admins.IsAdmin(adminID) {
		zap.L().Warn("login attempt from non admin", zap.Int64("user_id", adminID))
		return ErrInvalidCredentials
	}
	// an empty hash disables the admin api
	if s.passwordHash == "" || !s.hashService.ComparePassword(s.passwordHash, password) {
		zap.L().Warn("invalid admin password", zap.Int64("user_id", adminID))
		return ErrInvalidCredentials
	}
	zap.L().Info("admin successfully authenticated", zap.Int64("user_id", adminID))
	return nil
}

func (s *Service) GenerateToken(adminID int64) (string, error) {
	token, err := s.jwtService.GenerateJWT(adminID, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
