package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// MediaHandler handles admin media management and public file serving
type MediaHandler struct {
	media *service.MediaService
	log   *logger.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(media *service.MediaService, log *logger.Logger) *MediaHandler {
	return &MediaHandler{
		media: media,
		log:   log,
	}
}

// List returns stored media entries, filtered by ?tag= when supplied
// GET /api/v1/admin/media
func (h *MediaHandler) List(c echo.Context) error {
	entries := h.media.List(c.QueryParam("tag"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"media": entries,
	})
}

// Upload accepts a multipart upload with an optional comma-separated
// "tags" field
// POST /api/v1/admin/media
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	entry, err := h.media.Upload(fileHeader.Filename, src, parseTags(c.FormValue("tags")))
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusCreated, entry)
}

type setTagsRequest struct {
	Tags []string `json:"tags"`
}

// SetTags replaces an entry's tag set wholesale
// PUT /api/v1/admin/media/:id/tags
func (h *MediaHandler) SetTags(c echo.Context) error {
	var req setTagsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "tags must be an array of strings")
	}

	entry, err := h.media.SetTags(c.Param("id"), req.Tags)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, entry)
}

// Delete removes an entry and its file bytes
// DELETE /api/v1/admin/media/:id
func (h *MediaHandler) Delete(c echo.Context) error {
	h.media.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// GetFile streams stored media bytes, unauthenticated
// GET /api/v1/media/file/:id
func (h *MediaHandler) GetFile(c echo.Context) error {
	path, err := h.media.ContentPath(c.Param("id"))
	if err != nil {
		return httpError(h.log, err)
	}

	return c.File(path)
}

// parseTags splits a comma-separated form value into tags; the store
// normalizes further
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
