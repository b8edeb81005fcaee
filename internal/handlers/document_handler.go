package handlers

import (
	"net/http"

	"lawfirm_backend/internal/middleware"
	"lawfirm_backend/internal/services"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

// RegisterRoutes регистрирует маршруты документов
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cases := rg.Group("/case-summaries")
	cases.Use(middleware.AuthMiddleware())
	{
		cases.GET("/:id/documents", h.ListByCase)
		cases.POST("/:id/documents", h.Upload)
	}

	docs := rg.Group("/documents")
	docs.Use(middleware.AuthMiddleware())
	{
		docs.GET("", h.List)
		docs.GET("/:id", h.Get)
		docs.PUT("/:id", h.Update)
		docs.DELETE("/:id", h.Delete)
	}
}

// Upload - multipart-загрузка документа в дело.
// Метаданные в полях формы, файл в части "file".
func (h *DocumentHandler) Upload(c *gin.Context) {
	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file part"))
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.documentService.Upload(c.Request.Context(), p, c.Param("id"), req.Name, fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListByCase - документы дела
func (h *DocumentHandler) ListByCase(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	resp, err := h.documentService.ListByCase(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List - документы в видимой области принципала
func (h *DocumentHandler) List(c *gin.Context) {
	var query dto.ListDocumentsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.documentService.List(c.Request.Context(), p, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	resp, err := h.documentService.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	var req dto.UpdateDocumentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.documentService.Update(c.Request.Context(), p, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.documentService.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
