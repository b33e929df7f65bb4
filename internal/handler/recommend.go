package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anusha761/shopassist/internal/model"
	"github.com/anusha761/shopassist/internal/repository"
	"github.com/anusha761/shopassist/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendHandler handles recommendation and catalogue HTTP requests
type RecommendHandler struct {
	recommender *service.RecommendationService
	repo        *repository.CatalogueRepository
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(recommender *service.RecommendationService, repo *repository.CatalogueRepository) *RecommendHandler {
	return &RecommendHandler{
		recommender: recommender,
		repo:        repo,
	}
}

// Recommend handles POST /api/v1/recommendations
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.recommender.Recommend(c.Request.Context(), req.ProfileSentence)
	if err != nil {
		if errors.Is(err, service.ErrExtraction) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Couldn't understand the profile sentence, please rephrase it"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recommendation failed, please try again: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetLaptop handles GET /api/v1/laptops/:id
func (h *RecommendHandler) GetLaptop(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid laptop ID"})
		return
	}

	laptop, err := h.repo.GetLaptopByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get laptop: " + err.Error()})
		return
	}
	if laptop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Laptop not found"})
		return
	}

	c.JSON(http.StatusOK, laptop)
}
