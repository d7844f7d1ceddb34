package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const CtxAccountID ctxKey = "accountId"

var errNoToken = errors.New("missing Authorization header")

// JWTAuth devuelve un middleware que exige un token válido y mete el
// accountId (claim sub) en el contexto.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, err := accountFromRequest(r, secretBytes)
			if err != nil {
				writeError(w, r, apperr.Wrap(apperr.KindUnauthenticated, "auth.jwt", err))
				return
			}
			ctx := context.WithValue(r.Context(), CtxAccountID, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWTAuth deja pasar peticiones sin token. Si el token viene
// pero es inválido responde 401.
func OptionalJWTAuth(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, err := accountFromRequest(r, secretBytes)
			switch {
			case errors.Is(err, errNoToken):
				next.ServeHTTP(w, r)
			case err != nil:
				writeError(w, r, apperr.Wrap(apperr.KindUnauthenticated, "auth.jwt", err))
			default:
				ctx := context.WithValue(r.Context(), CtxAccountID, accountID)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

func accountFromRequest(r *http.Request, secret []byte) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errNoToken
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("invalid Authorization header")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("invalid sub in token")
	}
	return claims.Subject, nil
}

// AccountIDFromContext devuelve "" si la petición es anónima.
func AccountIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxAccountID).(string); ok {
		return v
	}
	return ""
}
