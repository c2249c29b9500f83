package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// tokenCookie — имя cookie, в которой клиент хранит токен авторизации.
const tokenCookie = "token"

// userIDKey — ключ контекста gin, под которым middleware сохраняет
// идентификатор аутентифицированного пользователя.
const userIDKey = "userID"

// AuthRequired проверяет токен из cookie или заголовка Authorization
// и прерывает запрос со статусом 401, если токен отсутствует или
// недействителен.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(tokenCookie)
		if token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Не авторизован"})
			return
		}
		userID, err := h.AuthService.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Недействительный токен"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID возвращает идентификатор пользователя,
// сохраненный middleware аутентификации.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
