package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
	"tradeboard/internal/service"
)

type fakeChallengeStore struct {
	m map[string][]byte
}

func (s *fakeChallengeStore) Put(_ context.Context, id string, rec []byte, _ time.Duration) error {
	s.m[id] = rec
	return nil
}

func (s *fakeChallengeStore) Take(_ context.Context, id string) ([]byte, bool, error) {
	rec, ok := s.m[id]
	delete(s.m, id)
	return rec, ok, nil
}

// storedCode decodes the pending record to recover the expected answer.
func (s *fakeChallengeStore) storedCode(t *testing.T, id string) string {
	t.Helper()
	raw, ok := s.m[id]
	require.True(t, ok)
	var rec struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(raw, &rec))
	return rec.Code
}

type fakeTokenStore struct {
	m map[uint64]string
}

func (s *fakeTokenStore) AddUserToken(_ context.Context, userID uint64, token string) error {
	s.m[userID] = token
	return nil
}

func (s *fakeTokenStore) GetUserToken(_ context.Context, userID uint64) (string, error) {
	token, ok := s.m[userID]
	if !ok {
		return "", errors.New("token not found")
	}
	return token, nil
}

func (s *fakeTokenStore) ExtendUserToken(_ context.Context, _ uint64) error { return nil }

func (s *fakeTokenStore) DeleteUserToken(_ context.Context, userID uint64) error {
	delete(s.m, userID)
	return nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *fakeChallengeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pkg.SetJWTSecrets("test-access", "test-refresh")

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, sqldb.AutoMigrate(db))

	challenges := &fakeChallengeStore{m: map[string][]byte{}}
	tokens := &fakeTokenStore{m: map[uint64]string{}}
	captcha := service.NewCaptchaService(challenges, pkg.NewCaptchaRenderer(t.TempDir()))
	h := NewUserHandler(service.NewUserService(db, tokens, captcha, zap.NewNop()), captcha)

	r := gin.New()
	r.POST("/api/user/register", h.Register)
	r.GET("/api/user/login/captcha", h.Captcha)
	r.POST("/api/user/login", h.Login)
	return r, challenges
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/user/register", gin.H{
		"username": "alice", "password": "hunter22", "confirm_password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/user/register", gin.H{
		"username": "alice", "password": "other", "confirm_password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/user/register", gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing required fields")
}

func TestLoginEndpoint(t *testing.T) {
	r, challenges := newAuthTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/user/register", gin.H{
		"username": "alice", "password": "hunter22", "confirm_password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/user/login/captcha", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ch struct {
		CaptchaID    string `json:"captcha_id"`
		CaptchaImage string `json:"captcha_image"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ch))
	assert.NotEmpty(t, ch.CaptchaID)
	assert.NotEmpty(t, ch.CaptchaImage)

	// Wrong answer: 401 carrying a replacement challenge.
	w = doJSON(t, r, http.MethodPost, "/api/user/login", gin.H{
		"username": "alice", "password": "hunter22",
		"captcha_id": ch.CaptchaID, "captcha": "WRONG1",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var retry struct {
		Msg          string `json:"msg"`
		CaptchaID    string `json:"captcha_id"`
		CaptchaImage string `json:"captcha_image"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &retry))
	require.NotEmpty(t, retry.CaptchaID)
	assert.NotEqual(t, ch.CaptchaID, retry.CaptchaID)

	// Retry with the fresh challenge succeeds.
	code := challenges.storedCode(t, retry.CaptchaID)
	w = doJSON(t, r, http.MethodPost, "/api/user/login", gin.H{
		"username": "alice", "password": "hunter22",
		"captcha_id": retry.CaptchaID, "captcha": code,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestLoginEndpointBadPassword(t *testing.T) {
	r, challenges := newAuthTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/user/register", gin.H{
		"username": "alice", "password": "hunter22", "confirm_password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/user/login/captcha", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ch struct {
		CaptchaID string `json:"captcha_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ch))

	code := challenges.storedCode(t, ch.CaptchaID)
	w = doJSON(t, r, http.MethodPost, "/api/user/login", gin.H{
		"username": "alice", "password": "wrongpw",
		"captcha_id": ch.CaptchaID, "captcha": code,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
