package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/repository"
)

// IdentityService — регистрация, вход и проверка токенов API.
//
// Токен — JWT (HS256) с jti, продублированным строкой в sessions: logout
// удаляет строку, и подписанный токен перестаёт приниматься.
type IdentityService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewIdentityService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	secret string,
	tokenTTL time.Duration,
) *IdentityService {
	return &IdentityService{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

type AuthResult struct {
	User  *model.User
	Token string
}

// Register создаёт пользователя API и сразу выдаёт токен.
func (s *IdentityService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	taken, err := s.users.EmailTaken(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login аутентифицирует пользователя и выдаёт новый токен.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Logout отзывает сессию токена.
func (s *IdentityService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Authenticate проверяет токен и возвращает пользователя и ID сессии.
func (s *IdentityService) Authenticate(ctx context.Context, tokenString string) (*model.User, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", ErrInvalidToken
	}
	userID, _ := claims["sub"].(string)
	sessionID, _ := claims["jti"].(string)
	if userID == "" || sessionID == "" {
		return nil, "", ErrInvalidToken
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidToken
		}
		return nil, "", fmt.Errorf("find session: %w", err)
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, "", ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidToken
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	return user, sessionID, nil
}

func (s *IdentityService) issueToken(ctx context.Context, user *model.User) (string, error) {
	sessionID := uuid.New()
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"jti": sessionID.String(),
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	session := &model.Session{ID: sessionID, UserID: user.ID, ExpiresAt: expiresAt}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}
