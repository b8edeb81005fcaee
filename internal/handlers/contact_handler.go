package handlers

import (
	"net/http"

	"lawfirm_backend/internal/middleware"
	"lawfirm_backend/internal/services"
	"lawfirm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

// RegisterRoutes регистрирует маршруты формы обратной связи
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Прием сообщения публичный
	rg.POST("/contact-messages", h.Create)

	admin := rg.Group("/contact-messages")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// Create - прием сообщения с формы обратной связи
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.contactService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ContactHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	p := middleware.GetPrincipal(c)
	resp, err := h.contactService.List(p, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ContactHandler) Get(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	resp, err := h.contactService.Get(p, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req dto.UpdateContactMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.contactService.Update(p, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.contactService.Delete(p, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact message deleted"})
}
