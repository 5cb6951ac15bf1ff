package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ответы повторяют прежний формат API: доменные исходы уходят со статусом
// 200 и плоским телом {"detail"|"message": ...}, настоящие ошибки — со
// статусом и телом {"detail": ...}.

func Detail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"detail": msg})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func Raise(c *gin.Context, statusCode int, msg string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"detail": msg})
}
