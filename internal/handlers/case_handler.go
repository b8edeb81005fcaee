package handlers

import (
	"net/http"

	"lawfirm_backend/internal/middleware"
	"lawfirm_backend/internal/services"
	"lawfirm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	*BaseHandler
	caseService   services.CaseService
	updateService services.CaseUpdateService
}

func NewCaseHandler(base *BaseHandler, caseService services.CaseService, updateService services.CaseUpdateService) *CaseHandler {
	return &CaseHandler{
		BaseHandler:   base,
		caseService:   caseService,
		updateService: updateService,
	}
}

// RegisterRoutes регистрирует маршруты дел и их хронологии
func (h *CaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cases := rg.Group("/case-summaries")
	cases.Use(middleware.AuthMiddleware())
	{
		cases.GET("", h.List)
		cases.POST("", h.Create)
		cases.GET("/:id", h.Get)
		cases.PUT("/:id", h.Update)
		cases.DELETE("/:id", h.Delete)

		// Хронология дела
		cases.GET("/:id/updates", h.ListUpdates)
		cases.POST("/:id/updates", h.CreateUpdate)
	}

	updates := rg.Group("/case-updates")
	updates.Use(middleware.AuthMiddleware())
	{
		updates.PUT("/:id", h.UpdateCaseUpdate)
		updates.DELETE("/:id", h.DeleteCaseUpdate)
	}
}

// Create - заведение дела (только админ)
func (h *CaseHandler) Create(c *gin.Context) {
	var req dto.CreateCaseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.caseService.Create(p, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CaseHandler) List(c *gin.Context) {
	var query dto.ListCasesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.caseService.List(p, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CaseHandler) Get(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	resp, err := h.caseService.Get(p, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CaseHandler) Update(c *gin.Context) {
	var req dto.UpdateCaseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.caseService.Update(p, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CaseHandler) Delete(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.caseService.Delete(p, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Case deleted"})
}

// ListUpdates - хронология дела
func (h *CaseHandler) ListUpdates(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	resp, err := h.updateService.ListByCase(p, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateUpdate - запись в хронологию (админ и назначенный юрист)
func (h *CaseHandler) CreateUpdate(c *gin.Context) {
	var req dto.CreateCaseUpdateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.updateService.Create(p, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CaseHandler) UpdateCaseUpdate(c *gin.Context) {
	var req dto.UpdateCaseUpdateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.updateService.Update(p, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CaseHandler) DeleteCaseUpdate(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.updateService.Delete(p, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Case update deleted"})
}
