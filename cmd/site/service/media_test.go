package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midwaymobile/storage-site/cmd/site/mediastore"
	"github.com/midwaymobile/storage-site/common/logger"
)

func newTestMediaService(t *testing.T) *MediaService {
	t.Helper()

	dir := t.TempDir()
	log := logger.Discard()
	store := mediastore.New(filepath.Join(dir, "media.json"), log)

	svc, err := NewMediaService(store, filepath.Join(dir, "content"), log)
	require.NoError(t, err)
	return svc
}

func TestMediaUploadWritesFileAndEntry(t *testing.T) {
	svc := newTestMediaService(t)

	entry, err := svc.Upload("Logo.PNG", strings.NewReader("png-bytes"), []string{"logo"})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(entry.ID, ".png"))
	assert.Equal(t, "Logo.PNG", entry.OriginalName)
	assert.Equal(t, []string{"logo"}, entry.Tags)
	assert.Equal(t, FileURLPrefix+entry.ID, entry.URL)

	path, err := svc.ContentPath(entry.ID)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestMediaUploadReassignsExclusiveTag(t *testing.T) {
	svc := newTestMediaService(t)

	first, err := svc.Upload("old-hero.jpg", strings.NewReader("a"), []string{"hero"})
	require.NoError(t, err)
	second, err := svc.Upload("new-hero.jpg", strings.NewReader("b"), []string{"hero"})
	require.NoError(t, err)

	site := svc.SiteMedia()
	assert.Equal(t, FileURLPrefix+second.ID, site.HeroURL)

	entries := svc.List("hero")
	require.Len(t, entries, 1)
	assert.NotEqual(t, first.ID, entries[0].ID)
}

func TestMediaSiteProjection(t *testing.T) {
	svc := newTestMediaService(t)

	logo, err := svc.Upload("logo.png", strings.NewReader("l"), []string{"logo"})
	require.NoError(t, err)
	moving, err := svc.Upload("truck.jpg", strings.NewReader("t"), []string{"service:moving"})
	require.NoError(t, err)

	site := svc.SiteMedia()
	assert.Equal(t, FileURLPrefix+logo.ID, site.LogoURL)
	assert.Empty(t, site.HeroURL)
	assert.Equal(t, map[string]string{"moving": FileURLPrefix + moving.ID}, site.Services)
}

func TestMediaDeleteRemovesFileAndEntry(t *testing.T) {
	svc := newTestMediaService(t)

	entry, err := svc.Upload("banner.jpg", strings.NewReader("x"), nil)
	require.NoError(t, err)

	svc.Delete(entry.ID)

	assert.Empty(t, svc.List(""))
	_, err = svc.ContentPath(entry.ID)
	assert.ErrorIs(t, err, mediastore.ErrNotFound)
}

func TestMediaContentPathRejectsTraversal(t *testing.T) {
	svc := newTestMediaService(t)

	for _, id := range []string{"../etc/passwd", ".hidden", "a/b.png", ""} {
		_, err := svc.ContentPath(id)
		var verr *mediastore.ValidationError
		assert.ErrorAs(t, err, &verr, "id %q should be rejected", id)
	}
}

func TestSanitizeExt(t *testing.T) {
	assert.Equal(t, ".png", sanitizeExt("photo.PNG"))
	assert.Equal(t, ".jpg", sanitizeExt("a.b.jpg"))
	assert.Equal(t, "", sanitizeExt("no-extension"))
	assert.Equal(t, "", sanitizeExt("weird.p~g"))
	assert.Equal(t, "", sanitizeExt("too.extremelylong"))
}
