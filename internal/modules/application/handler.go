package application

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
	public.POST("/applications/:token/:officeId", h.Create)
	// Смена статуса намеренно без админского токена: клиентская часть
	// зовёт этот маршрут от имени пользователя.
	public.PUT("/applications/:appId/:statusId", h.SetStatus)
	public.GET("/user/:token/applications", h.ListForUser)

	admin.GET("/applications", h.ListAll)
	admin.DELETE("/applications/:appId", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	officeID, err := strconv.ParseInt(c.Param("officeId"), 10, 64)
	if err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	err = h.service.Create(c.Request.Context(), c.Param("token"), officeID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, "Пользователь не найден")
	case errors.Is(err, ErrAdminForbidden):
		response.Detail(c, "Администратор не может отправить заявку")
	case errors.Is(err, ErrAlreadyExists):
		response.Detail(c, "Заявка уже отправлена")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при создании заявки")
	default:
		response.Detail(c, "Заявка отправлена")
	}
}

func (h *Handler) SetStatus(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("appId"), 10, 64)
	if err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}
	status, err := strconv.Atoi(c.Param("statusId"))
	if err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректный статус")
		return
	}

	cancelled, err := h.service.SetStatus(c.Request.Context(), appID, status)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Raise(c, http.StatusNotFound, "Заявка не найдена")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при обновлении заявки")
	case cancelled:
		response.Message(c, "Заявка отменена")
	default:
		response.Message(c, "Заявка принята")
	}
}

func (h *Handler) ListAll(c *gin.Context) {
	apps, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении заявок")
		return
	}
	if len(apps) == 0 {
		response.Message(c, "Заявок нет")
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *Handler) ListForUser(c *gin.Context) {
	apps, err := h.service.ListForUser(c.Request.Context(), c.Param("token"))
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Raise(c, http.StatusNotFound, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении заявок")
	default:
		c.JSON(http.StatusOK, apps)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("appId"), 10, 64)
	if err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	err = h.service.Delete(c.Request.Context(), appID)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Message(c, "Заявка не найдена")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при удалении заявки")
	default:
		response.Message(c, "Заявка удалена")
	}
}
