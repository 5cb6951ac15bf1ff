package favorite

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

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/user/:token/favorite/:officeId", h.Add)
	public.DELETE("/user/:token/favorite/:officeId", h.Remove)
	public.GET("/user/:token/favorite", h.List)
}

func (h *Handler) Add(c *gin.Context) {
	officeID, ok := parseOfficeID(c)
	if !ok {
		return
	}

	err := h.service.Add(c.Request.Context(), c.Param("token"), officeID)
	switch {
	case errors.Is(err, ErrAdminForbidden):
		response.Message(c, "Администратор не может добавить офис в понравившиеся")
	case errors.Is(err, ErrUserNotFound):
		response.Raise(c, http.StatusNotFound, "Пользователь не найден")
	case errors.Is(err, ErrOfficeNotFound):
		response.Raise(c, http.StatusNotFound, "Офис не найден")
	case errors.Is(err, ErrAlreadyAdded):
		response.Message(c, "Офис уже находится в понравившихся")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при добавлении в понравившиеся")
	default:
		response.Message(c, "Офис добавлен в понравившиеся")
	}
}

func (h *Handler) Remove(c *gin.Context) {
	officeID, ok := parseOfficeID(c)
	if !ok {
		return
	}

	err := h.service.Remove(c.Request.Context(), c.Param("token"), officeID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Message(c, "Пользователь не найден")
	case errors.Is(err, ErrNotFavorite):
		response.Message(c, "Офиса нет в добавленных")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при удалении из понравившихся")
	default:
		response.Message(c, "Офис удалён")
	}
}

func (h *Handler) List(c *gin.Context) {
	ids, err := h.service.List(c.Request.Context(), c.Param("token"))
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Raise(c, http.StatusNotFound, "Пользователь не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении понравившихся")
	case len(ids) == 0:
		response.Message(c, "Офисов нет")
	default:
		c.JSON(http.StatusOK, ids)
	}
}

func parseOfficeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("officeId"), 10, 64)
	if err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректный идентификатор")
		return 0, false
	}
	return id, true
}
