package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"officerent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/reg", h.Register)
	public.POST("/login", h.Login)
	public.GET("/users/:token", h.GetByToken)
	public.PUT("/users/:token", h.UpdateByToken)
	public.GET("/users/search/:phone", h.SearchByPhone)

	admin.DELETE("/users/:token", h.DeleteByToken)
	admin.GET("/users", h.ListNonAdmin)
	admin.GET("/users/id/:id", h.GetByID)
	admin.PUT("/users/id/:id", h.UpdateByID)
	admin.DELETE("/users/id/:id", h.DeleteByID)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		response.Detail(c, "Пользователь с данной электронной почтой уже зарегистрирован")
	case errors.Is(err, ErrDuplicateTel):
		response.Detail(c, "Пользователь с данным номером телефона уже зарегистрирован")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при регистрации")
	default:
		c.JSON(http.StatusOK, user)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, "Пользователь не найден")
	case errors.Is(err, ErrBlocked):
		response.Detail(c, "Пользователь заблокирован")
	case errors.Is(err, ErrBadPassword):
		response.Detail(c, "Неверный пароль")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при входе")
	default:
		c.JSON(http.StatusOK, res)
	}
}

func (h *Handler) GetByToken(c *gin.Context) {
	user, err := h.service.GetByToken(c.Request.Context(), c.Param("token"))
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении пользователя")
	default:
		c.JSON(http.StatusOK, user)
	}
}

func (h *Handler) UpdateByToken(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	err := h.service.UpdateByToken(c.Request.Context(), c.Param("token"), req)
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при обновлении пользователя")
	default:
		response.Message(c, "Данные обновлены")
	}
}

func (h *Handler) DeleteByToken(c *gin.Context) {
	err := h.service.DeleteByToken(c.Request.Context(), c.Param("token"))
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при удалении пользователя")
	default:
		response.Message(c, "Пользователь удалён")
	}
}

func (h *Handler) ListNonAdmin(c *gin.Context) {
	users, err := h.service.ListNonAdmin(c.Request.Context())
	if err != nil {
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении пользователей")
		return
	}
	if len(users) == 0 {
		response.Message(c, "Пользователь нет")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Message(c, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении пользователя")
	default:
		c.JSON(http.StatusOK, user)
	}
}

func (h *Handler) UpdateByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	err := h.service.UpdateByID(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Raise(c, http.StatusNotFound, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при обновлении пользователя")
	default:
		response.Message(c, "Данные обновлены")
	}
}

func (h *Handler) DeleteByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.DeleteByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Message(c, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при удалении пользователя")
	default:
		response.Message(c, "Пользователь удалён")
	}
}

func (h *Handler) SearchByPhone(c *gin.Context) {
	users, err := h.service.SearchByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Raise(c, http.StatusInternalServerError, "Ошибка при поиске пользователей")
		return
	}
	c.JSON(http.StatusOK, users)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректный идентификатор")
		return 0, false
	}
	return id, true
}
