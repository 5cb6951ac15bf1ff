package report

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"officerent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/export/report/pdf", h.Export)
}

func (h *Handler) Export(c *gin.Context) {
	data, filename, err := h.service.Generate(c.Request.Context())
	if err != nil {
		response.Raise(c, http.StatusInternalServerError, "Ошибка при формировании отчёта")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
