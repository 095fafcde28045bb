package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"comictrack/internal/services"
)

type GenreHandler struct {
	genres services.GenreService
}

func NewGenreHandler(genres services.GenreService) *GenreHandler {
	return &GenreHandler{genres: genres}
}

type genreRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.genres.Create(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": g})
}

// GET /genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genres.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": genres})
}

// GET /genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	g, err := h.genres.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": g})
}

// PUT /genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.genres.Update(id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": g})
}

// DELETE /genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.genres.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
