package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/anusha761/shopassist/internal/model"
	"github.com/anusha761/shopassist/internal/service"

	"github.com/gin-gonic/gin"
)

// ConversationHandler handles conversation-related HTTP requests
type ConversationHandler struct {
	engine      *service.ConversationEngine
	recommender *service.RecommendationService
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(engine *service.ConversationEngine, recommender *service.RecommendationService) *ConversationHandler {
	return &ConversationHandler{
		engine:      engine,
		recommender: recommender,
	}
}

// Start handles POST /api/v1/conversations
func (h *ConversationHandler) Start(c *gin.Context) {
	session, err := h.engine.Start(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start conversation: " + err.Error()})
		return
	}

	welcome := ""
	if n := len(session.Turns); n > 0 && session.Turns[n-1].Role == model.RoleAssistant {
		welcome = session.Turns[n-1].Content
	}

	c.JSON(http.StatusOK, model.StartConversationResponse{
		SessionID: session.ID,
		Message:   welcome,
	})
}

// Advance handles POST /api/v1/conversations/:id/messages
func (h *ConversationHandler) Advance(c *gin.Context) {
	startTime := time.Now()

	var req model.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.engine.Advance(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		case errors.Is(err, service.ErrSessionDone):
			c.JSON(http.StatusConflict, gin.H{"error": "Conversation already completed"})
		case errors.Is(err, service.ErrFlaggedInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sorry, this message cannot be processed. Please rephrase your request."})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Conversation turn failed, please try again: " + err.Error()})
		}
		return
	}

	response := model.AdvanceResponse{
		Message: result.Message,
		Done:    result.Done,
	}

	// A terminal turn carries the canonical sentence; run matching right away
	if result.Done {
		response.ProfileSentence = result.ProfileSentence

		reco, err := h.recommender.Recommend(c.Request.Context(), result.ProfileSentence)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Recommendation failed, please try again: " + err.Error()})
			return
		}
		response.Recommendations = reco.Recommendations
		response.Summary = reco.Summary
	}

	response.Took = time.Since(startTime).Milliseconds()
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/conversations/:id
func (h *ConversationHandler) Get(c *gin.Context) {
	session, err := h.engine.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}
