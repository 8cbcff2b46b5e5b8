package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadContext(t *testing.T, contentType string, payload []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="upload.bin"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestUploadImage(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = t.TempDir()

	c, rec := newUploadContext(t, "image/png", []byte("fake png data"))
	asAdmin(c)
	require.NoError(t, a.UploadImage(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, strings.HasSuffix(res.Filename, ".png"))
	assert.Equal(t, "/api/upload/files/"+res.Filename, res.URL)
	assert.Equal(t, "image/png", res.ContentType)

	// 文件落在上传目录里
	saved, err := os.ReadFile(filepath.Join(a.cfg.System.UploadDir, res.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png data"), saved)
}

func TestUploadCVPrefix(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = t.TempDir()

	c, rec := newUploadContext(t, "application/pdf", []byte("%PDF-1.4"))
	asAdmin(c)
	require.NoError(t, a.UploadCV(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, strings.HasPrefix(res.Filename, "CV_"))
	assert.True(t, strings.HasSuffix(res.Filename, ".pdf"))
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = t.TempDir()

	c, rec := newUploadContext(t, "application/x-msdownload", []byte("MZ"))
	asAdmin(c)
	require.NoError(t, a.UploadImage(c))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUploadRequiresAdmin(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = t.TempDir()

	c, rec := newUploadContext(t, "image/png", []byte("fake png data"))
	require.NoError(t, a.UploadImage(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newUploadContext(t, "image/png", []byte("fake png data"))
	asUser(c)
	require.NoError(t, a.UploadImage(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadFilePathBlocksTraversal(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = "/data/portfolio/uploads"

	c, _ := newJSONContext(http.MethodGet, "/api/upload/files/x", "")
	c.SetParamNames("filename")
	c.SetParamValues("../../etc/passwd")

	path, err := a.uploadFilePath(c)
	require.NoError(t, err)
	assert.Equal(t, "/data/portfolio/uploads/passwd", path)
}

func TestFileHead(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(a.cfg.System.UploadDir, "test.png"), []byte("12345"), 0o644))

	c, rec := newJSONContext(http.MethodHead, "/api/upload/files/test.png", "")
	c.SetParamNames("filename")
	c.SetParamValues("test.png")
	require.NoError(t, a.FileHead(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get(echo.HeaderContentLength))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/png")
	assert.Empty(t, rec.Body.Bytes())
}

func TestFileDelete(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = t.TempDir()
	target := filepath.Join(a.cfg.System.UploadDir, "old.png")
	require.NoError(t, os.WriteFile(target, []byte("12345"), 0o644))

	c, rec := newJSONContext(http.MethodDelete, "/api/upload/files/old.png", "")
	c.SetParamNames("filename")
	c.SetParamValues("old.png")
	asAdmin(c)
	require.NoError(t, a.FileDelete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestFileDeleteNotFound(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.cfg.System.UploadDir = t.TempDir()

	c, rec := newJSONContext(http.MethodDelete, "/api/upload/files/missing.png", "")
	c.SetParamNames("filename")
	c.SetParamValues("missing.png")
	asAdmin(c)
	require.NoError(t, a.FileDelete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
