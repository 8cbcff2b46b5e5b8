package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"webafan-portfolio/app/server/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type uploadResponse struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

func (a *App) UploadImage(c echo.Context) error {
	return a.handleUpload(c, constants.UploadImageContentTypes, constants.UploadMaxImageSize, "")
}

func (a *App) UploadCV(c echo.Context) error {
	return a.handleUpload(c, constants.UploadCVContentTypes, constants.UploadMaxCVSize, constants.UploadCVPrefix)
}

func (a *App) handleUpload(c echo.Context, allowedTypes map[string]string, maxSize int64, prefix string) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		a.l.Error("failed to read form file", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 校验大小与类型
	if fileHeader.Size > maxSize {
		return a.er(c, http.StatusRequestEntityTooLarge)
	}
	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return a.er(c, http.StatusUnsupportedMediaType)
	}

	// 使用随机文件名储存，避免覆盖与路径注入
	filename := prefix + uuid.NewString() + ext

	if err := os.MkdirAll(a.cfg.System.UploadDir, 0o755); err != nil {
		a.l.Error("failed to create upload dir", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	dstPath := filepath.Join(a.cfg.System.UploadDir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		a.l.Error("failed to create file", zap.String("path", dstPath), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		a.l.Error("failed to write file", zap.String("path", dstPath), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &uploadResponse{
		Filename:    filename,
		URL:         fmt.Sprintf("/api/upload/files/%s", filename),
		Size:        fileHeader.Size,
		ContentType: contentType,
	})
}

func (a *App) FileGet(c echo.Context) error {
	path, err := a.uploadFilePath(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	return c.File(path)
}

// FileHead 与 FileGet 一致，但只返回头部
func (a *App) FileHead(c echo.Context) error {
	path, err := a.uploadFilePath(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		c.Response().Header().Set(echo.HeaderContentType, contentType)
	}
	c.Response().Header().Set(echo.HeaderContentLength, fmt.Sprintf("%d", info.Size()))

	return c.NoContent(http.StatusOK)
}

func (a *App) FileDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	path, err := a.uploadFilePath(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete file", zap.String("path", path), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// uploadFilePath 把路径限制在上传目录内，防止路径穿越
func (a *App) uploadFilePath(c echo.Context) (string, error) {
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == ".." || filename == "/" {
		return "", fmt.Errorf("invalid filename")
	}
	return filepath.Join(a.cfg.System.UploadDir, filename), nil
}
