package handlers

import (
	"net/http"

	"lawfirm_backend/internal/middleware"
	"lawfirm_backend/internal/services"
	"lawfirm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	*BaseHandler
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(base *BaseHandler, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		BaseHandler:        base,
		appointmentService: appointmentService,
	}
}

// RegisterRoutes регистрирует маршруты записей на консультацию
func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Создание заявки доступно анониму; залогиненный привязывается
	rg.POST("/appointments", middleware.OptionalAuthMiddleware(), h.Create)

	authed := rg.Group("/appointments")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("", h.List)
		authed.GET("/:id", h.Get)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

// Create - заявка на консультацию
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.appointmentService.Create(p, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List - записи в видимой области, фильтр ?lawyer=
func (h *AppointmentHandler) List(c *gin.Context) {
	var query dto.ListAppointmentsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.appointmentService.List(p, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	resp, err := h.appointmentService.Get(p, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAppointmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p := middleware.GetPrincipal(c)
	resp, err := h.appointmentService.Update(p, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.appointmentService.Delete(p, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
