package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository/memory"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	users := memory.NewUserRepository()
	svc := NewAuthService(users, testSecret)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterUserData{Email: "Ana@Example.com", Password: "secret123", Username: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.NotEqual(t, "secret123", u.PasswordHash)

	token, logged, err := svc.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, u.ID.Hex(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	svc := NewAuthService(memory.NewUserRepository(), testSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterUserData{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterUserData{Email: "ANA@example.com", Password: "other-pass"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(memory.NewUserRepository(), testSecret)

	_, err := svc.Register(context.Background(), RegisterUserData{Email: "nope", Password: "secret123"})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.Register(context.Background(), RegisterUserData{Email: "ana@example.com", Password: "123"})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(memory.NewUserRepository(), testSecret)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterUserData{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ana@example.com", "wrong-pass")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}
