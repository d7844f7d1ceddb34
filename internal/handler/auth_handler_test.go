package handler

import (
	"net/http"
	"testing"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/auth/register",
		`{"email":"Ana@Example.com","password":"secret123","username":"ana"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	u := decodeBody[models.UserDoc](t, rec)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "secret123")

	rec = env.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	auth := decodeBody[models.AuthResponse](t, rec)
	require.NotEmpty(t, auth.Token)

	// el token sirve para rutas protegidas y su sub es el id de la cuenta
	rec = env.do(http.MethodGet, "/movies/user/ml-id", "", auth.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ml := decodeBody[models.MLIdentity](t, rec)
	assert.Equal(t, u.ID.Hex(), ml.AccountID)
	assert.GreaterOrEqual(t, ml.ReconciledID, 1)
	assert.LessOrEqual(t, ml.ReconciledID, 610)
}

func TestRegister_Errors(t *testing.T) {
	env := newTestEnv(t)
	body := `{"email":"ana@example.com","password":"secret123","username":"ana"}`
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/auth/register", body, "").Code)

	requireError(t, env.do(http.MethodPost, "/auth/register", body, ""), http.StatusConflict, "Conflict")
	requireError(t, env.do(http.MethodPost, "/auth/register",
		`{"email":"nope","password":"secret123","username":"ana"}`, ""), http.StatusBadRequest, "InvalidArgument")
	requireError(t, env.do(http.MethodPost, "/auth/register",
		`{"email":"b@example.com","password":"123","username":"bo"}`, ""), http.StatusBadRequest, "InvalidArgument")
	requireError(t, env.do(http.MethodPost, "/auth/register", `{`, ""), http.StatusBadRequest, "InvalidArgument")
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/auth/register",
		`{"email":"ana@example.com","password":"secret123","username":"ana"}`, "").Code)

	requireError(t, env.do(http.MethodPost, "/auth/login",
		`{"email":"ana@example.com","password":"wrong-pass"}`, ""), http.StatusUnauthorized, "Unauthenticated")
	requireError(t, env.do(http.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","password":"secret123"}`, ""), http.StatusUnauthorized, "Unauthenticated")
}
