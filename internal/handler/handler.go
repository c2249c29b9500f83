package handler

import (
	"errors"
	"net/http"

	"github.com/golonikum/attractions-app/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService       *service.AuthService
	GroupService      *service.GroupService
	AttractionService *service.AttractionService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, gs *service.GroupService, ats *service.AttractionService) *Handler {
	return &Handler{
		AuthService:       as,
		GroupService:      gs,
		AttractionService: ats,
	}
}

// RegisterRoutes регистрирует все маршруты приложения.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", h.AuthRequired(), h.Me)
		}

		protected := api.Group("", h.AuthRequired())
		{
			protected.GET("/groups", h.ListGroups)
			protected.POST("/groups", h.CreateGroup)
			protected.GET("/groups/:id", h.GetGroup)
			protected.PUT("/groups/:id", h.UpdateGroup)
			protected.DELETE("/groups/:id", h.DeleteGroup)

			protected.GET("/attractions", h.ListAttractions)
			protected.POST("/attractions", h.CreateAttraction)
			protected.GET("/attractions/:id", h.GetAttraction)
			protected.PUT("/attractions/:id", h.UpdateAttraction)
			protected.DELETE("/attractions/:id", h.DeleteAttraction)

			protected.PUT("/order", h.UpdateOrder)

			protected.GET("/search", h.SearchAttractions)
			protected.GET("/notes", h.ListNotes)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// respondError переводит ошибку бизнес-логики в HTTP-статус и JSON-тело.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сервера: " + err.Error()})
	}
}
