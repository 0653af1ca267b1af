package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/storage"
	"nexivo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler proxies stored objects back to the client so storage
// credentials and bucket layout never leave the server.
type FileHandler struct {
	*BaseHandler
	uploads *storage.Gateway
}

func NewFileHandler(base *BaseHandler, uploads *storage.Gateway) *FileHandler {
	return &FileHandler{BaseHandler: base, uploads: uploads}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drive/image/:id", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	ref := c.Param("id")

	rc, err := h.uploads.Retrieve(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.HandleServiceError(c, apperrors.NewNotFoundError("file", "File not found"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	defer func() { _ = rc.Close() }()

	contentType := mime.TypeByExtension(filepath.Ext(ref))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.CtxWarn(c.Request.Context(), "file stream interrupted", "ref", ref, "error", err.Error())
	}
}
