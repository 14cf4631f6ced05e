package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midwaymobile/storage-site/cmd/site/mediastore"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/config"
	"github.com/midwaymobile/storage-site/common/logger"
)

type mediaTestEnv struct {
	e     *echo.Echo
	token string
}

func newMediaTestEnv(t *testing.T) *mediaTestEnv {
	t.Helper()

	dir := t.TempDir()
	log := logger.Discard()

	store := mediastore.New(filepath.Join(dir, "media.json"), log)
	media, err := service.NewMediaService(store, filepath.Join(dir, "content"), log)
	require.NoError(t, err)

	auth, err := service.NewAuthService(config.AuthConfig{
		AdminUser:     "admin",
		AdminPassword: "letmein",
		TokenTTL:      time.Hour,
	}, service.NewMemoryTokenStore(), log)
	require.NoError(t, err)

	token, err := auth.Login(context.Background(), "admin", "letmein")
	require.NoError(t, err)

	h := NewMediaHandler(media, log)

	e := echo.New()
	e.GET("/api/v1/media/file/:id", h.GetFile)
	admin := e.Group("/api/v1/admin/media", middleware.RequireAdmin(auth))
	admin.GET("", h.List)
	admin.POST("", h.Upload)
	admin.PUT("/:id/tags", h.SetTags)
	admin.DELETE("/:id", h.Delete)

	return &mediaTestEnv{e: e, token: token}
}

func (env *mediaTestEnv) do(t *testing.T, req *http.Request, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	if authed {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *mediaTestEnv) upload(t *testing.T, filename, content, tags string) models.MediaEntry {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	if tags != "" {
		require.NoError(t, w.WriteField("tags", tags))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/media", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := env.do(t, req, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var entry models.MediaEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	return entry
}

func TestMediaAdminRequiresToken(t *testing.T) {
	env := newMediaTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/media", nil)
	rec := env.do(t, req, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/media", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec = env.do(t, req, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMediaUploadAndFileServing(t *testing.T) {
	env := newMediaTestEnv(t)

	entry := env.upload(t, "hero.jpg", "jpeg-bytes", "hero")
	assert.Equal(t, []string{"hero"}, entry.Tags)
	assert.True(t, strings.HasSuffix(entry.ID, ".jpg"))

	// File serving is unauthenticated
	req := httptest.NewRequest(http.MethodGet, "/api/v1/media/file/"+entry.ID, nil)
	rec := env.do(t, req, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
}

func TestMediaListFiltersByTag(t *testing.T) {
	env := newMediaTestEnv(t)

	env.upload(t, "logo.png", "a", "logo")
	env.upload(t, "gallery.jpg", "b", "gallery")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/media?tag=logo", nil)
	rec := env.do(t, req, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Media []models.MediaEntry `json:"media"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Media, 1)
	assert.Equal(t, []string{"logo"}, resp.Media[0].Tags)
}

func TestMediaSetTagsUnknownID(t *testing.T) {
	env := newMediaTestEnv(t)

	body := strings.NewReader(`{"tags":["hero"]}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/media/missing.png/tags", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := env.do(t, req, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMediaSetTagsMovesExclusiveTag(t *testing.T) {
	env := newMediaTestEnv(t)

	first := env.upload(t, "old-logo.png", "a", "logo")
	second := env.upload(t, "new-logo.png", "b", "")

	body := strings.NewReader(`{"tags":["logo"]}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/media/"+second.ID+"/tags", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := env.do(t, req, true)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/media?tag=logo", nil)
	rec = env.do(t, req, true)
	var resp struct {
		Media []models.MediaEntry `json:"media"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Media, 1)
	assert.Equal(t, second.ID, resp.Media[0].ID)
	assert.NotEqual(t, first.ID, resp.Media[0].ID)
}

func TestMediaDelete(t *testing.T) {
	env := newMediaTestEnv(t)

	entry := env.upload(t, "temp.png", "x", "")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/media/"+entry.ID, nil)
	rec := env.do(t, req, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/media/file/"+entry.ID, nil)
	rec = env.do(t, req, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
