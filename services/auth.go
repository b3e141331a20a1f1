package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/store"
)

// AuthService registers users and issues JWTs.
type AuthService struct {
	Store    store.Store
	Secret   []byte
	TokenTTL time.Duration
	Log      *zap.Logger

	// Now is the clock; tests may override it.
	Now func() time.Time
}

func NewAuthService(st store.Store, secret []byte, log *zap.Logger) *AuthService {
	return &AuthService{
		Store:    st,
		Secret:   secret,
		TokenTTL: 24 * time.Hour,
		Log:      log,
		Now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, &ValidationError{Message: "username, email and password are required"}
	}

	if _, err := s.Store.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Store.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.Now(),
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.Log.Info("user registered", zap.String("username", username))
	return user, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.Store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := s.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.TokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}
