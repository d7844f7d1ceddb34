package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTTL          = 24 * time.Hour
	MinPasswordLength = 6
)

type AuthService struct {
	users     repository.UserStore
	jwtSecret []byte
	now       func() time.Time
}

type RegisterUserData struct {
	Email    string
	Password string
	Username string
}

func NewAuthService(users repository.UserStore, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret), now: time.Now}
}

// ================== REGISTER & LOGIN ==================

// Register crea una cuenta nueva. El email es único.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.UserDoc, error) {
	const op = "auth.register"

	email := strings.ToLower(strings.TrimSpace(data.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.New(apperr.KindInvalidArgument, op, "a valid email is required")
	}
	if len(data.Password) < MinPasswordLength {
		return nil, apperr.New(apperr.KindInvalidArgument, op,
			fmt.Sprintf("password must have at least %d characters", MinPasswordLength))
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, op, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, op, err)
	}

	now := s.now().UTC()
	u := &models.UserDoc{
		Email:        email,
		Username:     strings.TrimSpace(data.Username),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperr.New(apperr.KindConflict, op, "email already registered")
		}
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	return u, nil
}

// Login valida credenciales y firma un JWT con sub = hex del ObjectID.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	const op = "auth.login"

	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if u == nil {
		return "", nil, apperr.New(apperr.KindUnauthenticated, op, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.KindUnauthenticated, op, "invalid credentials")
	}

	token, err := s.IssueToken(u.ID.Hex())
	if err != nil {
		return "", nil, apperr.Wrap(apperr.KindUnknown, op, err)
	}
	return token, u, nil
}

// IssueToken firma un token HS256 para la cuenta.
func (s *AuthService) IssueToken(accountID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	return token.SignedString(s.jwtSecret)
}
