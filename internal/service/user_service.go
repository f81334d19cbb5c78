package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
)

const DefaultAvatar = "default.jpg"

// TokenStore keeps the server-side copy of issued access tokens.
type TokenStore interface {
	AddUserToken(ctx context.Context, userID uint64, token string) error
	GetUserToken(ctx context.Context, userID uint64) (string, error)
	ExtendUserToken(ctx context.Context, userID uint64) error
	DeleteUserToken(ctx context.Context, userID uint64) error
}

type UserService struct {
	users   *sqldb.UserRepository
	tokens  TokenStore
	captcha *CaptchaService
	logger  *zap.Logger
}

func NewUserService(db *gorm.DB, tokens TokenStore, captcha *CaptchaService, logger *zap.Logger) *UserService {
	return &UserService{
		users:   &sqldb.UserRepository{DB: db},
		tokens:  tokens,
		captcha: captcha,
		logger:  logger,
	}
}

// Register has no CAPTCHA gate; only login does.
func (s *UserService) Register(username, password, confirm string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", ErrValidation)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	taken, err := s.users.ExistsByUsername(username)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: username already taken", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&model.User{
		Username: username,
		Password: string(hash),
		Avatar:   DefaultAvatar,
	})
}

// Login checks the challenge before the credentials. The challenge is
// consumed either way; callers mint a fresh one for every failure response.
func (s *UserService) Login(ctx context.Context, username, password, challengeID, answer string) (*pkg.Pair, error) {
	imagePath, err := s.captcha.Verify(ctx, challengeID, answer)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// Only the successful path cleans its artifact up; failed attempts
	// leave theirs on disk.
	if imagePath != "" {
		if err := os.Remove(imagePath); err != nil {
			s.logger.Warn("delete captcha image", zap.String("path", imagePath), zap.Error(err))
		}
	}

	pair, err := pkg.GeneratePair(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.AddUserToken(ctx, user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.tokens.DeleteUserToken(ctx, userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}
