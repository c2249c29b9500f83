package handler

import (
	"net/http"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/gin-gonic/gin"
)

// ListGroups возвращает все группы пользователя (тег и название по возрастанию).
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.GroupService.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// CreateGroup создает новую группу.
func (h *Handler) CreateGroup(c *gin.Context) {
	var req model.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат запроса: " + err.Error()})
		return
	}
	group, err := h.GroupService.Create(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// GetGroup возвращает группу по идентификатору.
func (h *Handler) GetGroup(c *gin.Context) {
	group, err := h.GroupService.Get(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// UpdateGroup применяет частичное обновление группы.
func (h *Handler) UpdateGroup(c *gin.Context) {
	var req model.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат координат. Ожидается массив [долгота, широта]"})
		return
	}
	group, err := h.GroupService.Update(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// DeleteGroup удаляет группу вместе с ее достопримечательностями.
func (h *Handler) DeleteGroup(c *gin.Context) {
	if err := h.GroupService.Delete(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Группа удалена"})
}
