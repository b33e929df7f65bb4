package handler

import (
	"net/http"

	"github.com/anusha761/shopassist/internal/model"
	"github.com/anusha761/shopassist/internal/repository"
	"github.com/anusha761/shopassist/internal/service"

	"github.com/gin-gonic/gin"
)

// EmbeddingHandler handles embedding-related HTTP requests
type EmbeddingHandler struct {
	repo     *repository.CatalogueRepository
	embedder service.Embedder
}

// NewEmbeddingHandler creates a new embedding handler
func NewEmbeddingHandler(repo *repository.CatalogueRepository, embedder service.Embedder) *EmbeddingHandler {
	return &EmbeddingHandler{
		repo:     repo,
		embedder: embedder,
	}
}

// BatchUpdate handles POST /api/v1/embeddings/batch
func (h *EmbeddingHandler) BatchUpdate(c *gin.Context) {
	var req model.EmbeddingBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if len(req.Embeddings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No embeddings provided"})
		return
	}

	success, errors := h.repo.BatchUpdateEmbeddings(c.Request.Context(), req.Embeddings)

	response := model.EmbeddingBatchResponse{
		Success: success,
		Failed:  len(req.Embeddings) - success,
		Errors:  errors,
	}

	if len(errors) > 0 {
		c.JSON(http.StatusPartialContent, response)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

// Generate handles POST /api/v1/embeddings/generate: computes and stores
// description embeddings for the whole catalogue.
func (h *EmbeddingHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	laptops, err := h.repo.ListLaptops(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalogue: " + err.Error()})
		return
	}
	if len(laptops) == 0 {
		c.JSON(http.StatusOK, model.EmbeddingGenerateResponse{Generated: 0, Total: 0})
		return
	}

	texts := make([]string, len(laptops))
	for i, laptop := range laptops {
		texts[i] = laptop.Description
	}

	embeddings, err := h.embedder.CreateEmbeddings(ctx, texts)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create embeddings: " + err.Error()})
		return
	}

	items := make([]model.EmbeddingItem, len(laptops))
	for i, laptop := range laptops {
		items[i] = model.EmbeddingItem{LaptopID: laptop.ID, Embedding: embeddings[i]}
	}

	success, _ := h.repo.BatchUpdateEmbeddings(ctx, items)
	c.JSON(http.StatusOK, model.EmbeddingGenerateResponse{Generated: success, Total: len(laptops)})
}
