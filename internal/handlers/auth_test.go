package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/auth"
	"github.com/flowmanager-dev/flowmanager/internal/database"
	"github.com/flowmanager-dev/flowmanager/internal/router"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *appcontext.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("BCRYPT_COST", "4")

	jwtManager, err := auth.NewJWTManager("test-secret")
	require.NoError(t, err)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	appCtx := &appcontext.Context{DB: db, Logger: zap.NewNop(), JWT: jwtManager}
	return router.NewRouter(appCtx), appCtx
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func registerUser(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":      email,
		"password":   password,
		"first_name": "Test",
		"last_name":  "User",
	})
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := registerUser(t, r, "new@example.com", "pw123456")
	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.OK)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "NEW@example.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.True(t, env.OK)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginFailuresShareOneResponse(t *testing.T) {
	r, _ := newTestRouter(t)

	registerUser(t, r, "known@example.com", "pw123456")

	missing := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "ghost@example.com",
		"password": "pw123456",
	})
	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "known@example.com",
		"password": "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	// Byte-identical bodies: the response never reveals which check failed.
	assert.Equal(t, missing.Body.String(), wrongPassword.Body.String())

	env := decodeEnvelope(t, missing)
	assert.False(t, env.OK)
	assert.Equal(t, "Invalid email or password", env.Error)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r, appCtx := newTestRouter(t)

	first := registerUser(t, r, "dupe@example.com", "pw123456")
	require.Equal(t, http.StatusCreated, first.Code)

	second := registerUser(t, r, "DUPE@example.com", "pw123456")
	assert.Equal(t, http.StatusConflict, second.Code)

	env := decodeEnvelope(t, second)
	assert.False(t, env.OK)
	assert.Contains(t, env.Error, "dupe@example.com")

	users, err := store.ListUsers(appCtx.DB)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.OK)
}

func TestMeWithSessionCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := registerUser(t, r, "me@example.com", "pw123456")
	require.Equal(t, http.StatusCreated, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	me := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cookies[0])
	require.Equal(t, http.StatusOK, me.Code)

	env := decodeEnvelope(t, me)
	require.True(t, env.OK)

	var user struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "me@example.com", user.Email)
}

func TestDeleteUserEndpointCascades(t *testing.T) {
	r, appCtx := newTestRouter(t)

	rec := registerUser(t, r, "admin@example.com", "pw123456")
	require.Equal(t, http.StatusCreated, rec.Code)
	session := rec.Result().Cookies()[0]

	victim, err := store.CreateUser(appCtx.DB, store.CreateUserParams{
		Email:    "victim@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	del := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", victim.ID), nil, session)
	require.Equal(t, http.StatusOK, del.Code)

	env := decodeEnvelope(t, del)
	require.True(t, env.OK)

	_, err = store.GetUserByEmail(appCtx.DB, "victim@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
