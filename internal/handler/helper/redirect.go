package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Категории сообщений, передаваемых вместе с перенаправлением
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
)

// Redirect отвечает 303 See Other с заголовком Location.
// Тело дублирует адрес и, если задано, сообщение под ключом категории.
func Redirect(c *gin.Context, location, category, message string) {
	body := gin.H{"redirect": location}
	if message != "" {
		body[category] = message
	}
	c.Header("Location", location)
	c.AbortWithStatusJSON(http.StatusSeeOther, body)
}

// Deny перенаправляет с предупреждением
func Deny(c *gin.Context, location, message string) {
	Redirect(c, location, FlashWarning, message)
}
