package office

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
	public.GET("/office", h.List)
	public.GET("/office/:id", h.Get)
	public.POST("/office/search", h.Search)
	public.GET("/offices/search/:query", h.SearchByName)

	admin.POST("/office", h.Create)
	admin.PUT("/office/:id", h.Update)
	admin.DELETE("/office/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	offices, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении офисов")
		return
	}
	if len(offices) == 0 {
		response.Message(c, "Офисов нет")
		return
	}
	c.JSON(http.StatusOK, offices)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	o, err := h.service.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Raise(c, http.StatusNotFound, "Офис не найден")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при получении офиса")
	default:
		c.JSON(http.StatusOK, o)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req OfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrPhotoSave):
		response.Raise(c, http.StatusInternalServerError, "Error saving photos")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Error creating office")
	default:
		c.JSON(http.StatusOK, o)
	}
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	err := h.service.Update(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Raise(c, http.StatusNotFound, "Офис не найден")
	case errors.Is(err, ErrPhotoSave), errors.Is(err, ErrPhotoRemove):
		response.Raise(c, http.StatusInternalServerError, "Error updating photos")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при обновлении офиса")
	default:
		response.Message(c, "Данные обновлены")
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Raise(c, http.StatusNotFound, "Офис не найден")
	case errors.Is(err, ErrPhotoRemove):
		response.Raise(c, http.StatusInternalServerError, "Ошибка при удалении папки с фото")
	case err != nil:
		response.Raise(c, http.StatusInternalServerError, "Ошибка при удалении офиса")
	default:
		response.Message(c, "Офис и связанные фото удалены")
	}
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	offices, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		response.Raise(c, http.StatusInternalServerError, "Ошибка при поиске офисов")
		return
	}
	if len(offices) == 0 {
		response.Message(c, "По данным критериям офисов нет")
		return
	}
	c.JSON(http.StatusOK, offices)
}

func (h *Handler) SearchByName(c *gin.Context) {
	offices, err := h.service.SearchByName(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.Raise(c, http.StatusInternalServerError, "Ошибка при поиске офисов")
		return
	}
	c.JSON(http.StatusOK, offices)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Raise(c, http.StatusBadRequest, "Некорректный идентификатор")
		return 0, false
	}
	return id, true
}
