package model

// StartConversationResponse is returned when a new session is opened.
type StartConversationResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// AdvanceRequest carries one user turn.
type AdvanceRequest struct {
	Message string `json:"message" binding:"required"`
}

// AdvanceResponse is the engine's reply to one user turn. When Done is true
// the requirement gathering finished: ProfileSentence holds the canonical
// sentence and Recommendations the matched catalogue rows.
type AdvanceResponse struct {
	Message         string        `json:"message"`
	Done            bool          `json:"done"`
	ProfileSentence string        `json:"profile_sentence,omitempty"`
	Recommendations []LaptopMatch `json:"recommendations,omitempty"`
	Summary         string        `json:"summary,omitempty"`
	Took            int64         `json:"took_ms"`
}

// RecommendRequest asks for recommendations from a canonical profile sentence.
type RecommendRequest struct {
	ProfileSentence string `json:"profile_sentence" binding:"required"`
}

// RecommendResponse carries the ranked, filtered recommendations.
type RecommendResponse struct {
	Validation      ValidationResult `json:"validation"`
	Profile         *UserProfile     `json:"profile,omitempty"`
	Recommendations []LaptopMatch    `json:"recommendations"`
	Summary         string           `json:"summary,omitempty"`
	Took            int64            `json:"took_ms"`
}

// EmbeddingBatchRequest carries precomputed embeddings for storage.
type EmbeddingBatchRequest struct {
	Embeddings []EmbeddingItem `json:"embeddings" binding:"required"`
}

// EmbeddingBatchResponse reports how many embeddings were stored.
type EmbeddingBatchResponse struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// EmbeddingGenerateResponse reports a server-side embedding generation run.
type EmbeddingGenerateResponse struct {
	Generated int `json:"generated"`
	Total     int `json:"total"`
}
