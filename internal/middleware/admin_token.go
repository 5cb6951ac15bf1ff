package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officerent/internal/pkg/response"
)

const AdminTokenHeader = "x-admin-token"

// AdminToken пропускает запрос только с верным заголовком x-admin-token.
// Токен передаётся параметром при старте; пустой настроенный токен
// означает, что админ ещё не инициализирован, и тоже даёт 403.
func AdminToken(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(AdminTokenHeader)
		if adminToken == "" || presented != adminToken {
			response.Raise(c, http.StatusForbidden, "Недействительный токен администратора")
			return
		}
		c.Next()
	}
}
