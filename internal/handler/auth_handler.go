package handler

import (
	"net/http"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/gin-gonic/gin"
)

// cookieMaxAge — срок жизни cookie с токеном, совпадает со сроком токена.
const cookieMaxAge = 7 * 24 * 60 * 60

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат запроса: " + err.Error()})
		return
	}
	user, err := h.AuthService.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login проверяет учетные данные и устанавливает cookie с токеном.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат запроса: " + err.Error()})
		return
	}
	user, token, err := h.AuthService.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(tokenCookie, token, cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout сбрасывает cookie с токеном.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Выход выполнен"})
}

// Me возвращает профиль аутентифицированного пользователя.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.AuthService.GetUser(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
