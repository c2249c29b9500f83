package handler

import (
	"net/http"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/gin-gonic/gin"
)

// ListAttractions возвращает достопримечательности пользователя:
// все или только указанной группы (?groupId=), по возрастанию порядка.
func (h *Handler) ListAttractions(c *gin.Context) {
	attractions, err := h.AttractionService.List(currentUserID(c), c.Query("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attractions": attractions})
}

// CreateAttraction создает новую достопримечательность.
func (h *Handler) CreateAttraction(c *gin.Context) {
	var req model.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат запроса: " + err.Error()})
		return
	}
	attraction, err := h.AttractionService.Create(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attraction": attraction})
}

// GetAttraction возвращает достопримечательность по идентификатору.
func (h *Handler) GetAttraction(c *gin.Context) {
	attraction, err := h.AttractionService.Get(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attraction": attraction})
}

// UpdateAttraction применяет частичное обновление достопримечательности.
func (h *Handler) UpdateAttraction(c *gin.Context) {
	var req model.UpdateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат запроса: " + err.Error()})
		return
	}
	attraction, err := h.AttractionService.Update(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attraction": attraction})
}

// DeleteAttraction удаляет достопримечательность.
func (h *Handler) DeleteAttraction(c *gin.Context) {
	if err := h.AttractionService.Delete(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Достопримечательность удалена"})
}

// UpdateOrder атомарно применяет новый порядок достопримечательностей
// внутри группы: либо обновляются все перечисленные строки, либо ни одной.
func (h *Handler) UpdateOrder(c *gin.Context) {
	var req model.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат запроса: " + err.Error()})
		return
	}
	updated, err := h.AttractionService.UpdateOrder(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"updated": len(updated),
		"items":   updated,
	})
}
