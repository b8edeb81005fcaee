package handlers

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"lawfirm_backend/internal/storage"
	"lawfirm_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler отдает файлы документов из storage-бэкенда
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

// RegisterRoutes регистрирует маршрут раздачи файлов
func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/*path", h.ServeFile)
}

// ServeFile стримит файл по относительному пути
func (h *FileHandler) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	// Путь не должен выходить за пределы каталога файлов
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.store.Exists(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !exists {
		apperrors.HandleError(c, apperrors.New(apperrors.CodeDocumentNotFound, "files", "File not found", http.StatusNotFound))
		return
	}

	size, err := h.store.GetSize(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	reader, err := h.store.Get(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}
