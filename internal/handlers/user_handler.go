package handlers

import (
	"net/http"

	"lawfirm_backend/internal/middleware"
	"lawfirm_backend/internal/services"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes регистрирует маршруты пользователей
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Список юристов фирмы публичный
	rg.GET("/lawyers", h.ListLawyers)

	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/user", h.GetCurrentUser)
		authed.PUT("/user", h.UpdateCurrentUser)
		authed.GET("/user-by-email", h.GetUserByEmail)
	}

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.POST("/admin/users", h.AdminCreateUser)
	}
}

// GetCurrentUser - профиль текущего пользователя
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCurrentUser - правка собственного профиля
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserByEmail - поиск пользователя по email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: email"))
		return
	}

	resp, err := h.userService.GetByEmail(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListLawyers - публичный список юристов
func (h *UserHandler) ListLawyers(c *gin.Context) {
	resp, err := h.userService.ListLawyers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListUsers - админский список с фильтром ?role=
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.userService.ListUsers(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AdminCreateUser - создание пользователя с явной ролью
func (h *UserHandler) AdminCreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.AdminCreateUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
