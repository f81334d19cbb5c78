package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tradeboard/internal/model"
	"tradeboard/internal/repository/sqldb"
	"tradeboard/internal/service"
)

func newListingTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, sqldb.AutoMigrate(db))

	h := NewListingHandler(service.NewListingService(db), service.NewPostService(db))
	r := gin.New()
	r.GET("/api/category/:kind/:category", h.Category)
	return r, db
}

func getPage(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// The echoed page must be the page actually served, not the raw query value.
func TestCategoryEndpointEchoesEffectivePage(t *testing.T) {
	r, db := newListingTestRouter(t)
	alice := &model.User{Username: "alice", Password: "x", Avatar: "default.jpg"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(&model.Announcement{
		Category: model.CategoryGeneral,
		Title:    "hello",
		UserID:   alice.ID,
		Date:     "2024-01-01 09:00:00",
	}).Error)

	var resp struct {
		Page       int               `json:"page"`
		TotalPages int               `json:"total_pages"`
		Posts      []json.RawMessage `json:"posts"`
	}

	w := getPage(r, "/api/category/announcements/General?page=0")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Len(t, resp.Posts, 1)

	w = getPage(r, "/api/category/announcements/General?page=-3")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)

	w = getPage(r, "/api/category/announcements/General?page=2")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page, "past-the-end pages keep their number")
	assert.Empty(t, resp.Posts)
}

func TestCategoryEndpointUnknownKind(t *testing.T) {
	r, _ := newListingTestRouter(t)
	w := getPage(r, "/api/category/auctions/General?page=1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
