package handler

import (
	"net/http"

	"github.com/golonikum/attractions-app/internal/catalog"

	"github.com/gin-gonic/gin"
)

// SearchAttractions выполняет поиск по названию и описанию всех
// достопримечательностей пользователя (?query=, подстрока без учета регистра).
func (h *Handler) SearchAttractions(c *gin.Context) {
	attractions, err := h.AttractionService.List(currentUserID(c), "")
	if err != nil {
		respondError(c, err)
		return
	}
	found := catalog.SearchAttractions(attractions, c.Query("query"))
	c.JSON(http.StatusOK, gin.H{"attractions": found, "count": len(found)})
}

// ListNotes возвращает плоский список заметок пользователя, суженный
// фильтрами по тегу (?tag=) и названию группы (?group=) и поиском по
// тексту заметки (?search=), по убыванию даты.
func (h *Handler) ListNotes(c *gin.Context) {
	userID := currentUserID(c)
	groups, err := h.GroupService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	attractions, err := h.AttractionService.List(userID, "")
	if err != nil {
		respondError(c, err)
		return
	}
	notes := catalog.FilterNotes(groups, attractions, catalog.Filters{
		Tags:       c.QueryArray("tag"),
		GroupNames: c.QueryArray("group"),
		Query:      c.Query("search"),
	})
	c.JSON(http.StatusOK, gin.H{"notes": notes, "count": len(notes)})
}
