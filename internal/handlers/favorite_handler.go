package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"comictrack/internal/services"
)

type FavoriteHandler struct {
	favorites services.FavoriteService
}

func NewFavoriteHandler(favorites services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// GET /favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	comics, err := h.favorites.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": comics})
}

// POST /favorites/:comicId
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	comicID, err := strconv.Atoi(c.Param("comicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comic id"})
		return
	}

	if err := h.favorites.Add(userID, comicID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// DELETE /favorites/:comicId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	comicID, err := strconv.Atoi(c.Param("comicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comic id"})
		return
	}

	if err := h.favorites.Remove(userID, comicID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
