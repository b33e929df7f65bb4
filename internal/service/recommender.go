package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/anusha761/shopassist/internal/model"
)

// RecommendationService runs the profile-to-ranked-catalogue pipeline:
// validate the canonical sentence, extract the structured profile, match the
// catalogue, filter weak rows, and summarize the result for the user.
type RecommendationService struct {
	validator *ProfileValidator
	extractor Extractor
	matcher   *CatalogueMatcher
	filter    *RecommendationFilter
	completer FreeTextCompleter
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	validator *ProfileValidator,
	extractor Extractor,
	matcher *CatalogueMatcher,
	filter *RecommendationFilter,
	completer FreeTextCompleter,
) *RecommendationService {
	return &RecommendationService{
		validator: validator,
		extractor: extractor,
		matcher:   matcher,
		filter:    filter,
		completer: completer,
	}
}

// Recommend turns a canonical profile sentence into a final recommendation
// list. A rejected sentence returns the validation reason without touching
// the catalogue; an empty match set is a valid "no strong match" outcome.
func (s *RecommendationService) Recommend(ctx context.Context, profileSentence string) (*model.RecommendResponse, error) {
	startTime := time.Now()

	validation := s.validator.Validate(profileSentence)
	if !validation.Accepted {
		return &model.RecommendResponse{
			Validation:      validation,
			Recommendations: []model.LaptopMatch{},
			Took:            time.Since(startTime).Milliseconds(),
		}, nil
	}

	profile, err := s.extractor.Extract(ctx, profileSentence, true)
	if err != nil {
		return nil, err
	}

	// The sentence already passed the hard validation rules; its budget is
	// deterministic and overrides whatever the model extracted.
	if budget, ok := s.validator.ExtractBudget(profileSentence); ok {
		profile.Budget = budget
	}

	matches, err := s.matcher.Match(ctx, profile)
	if err != nil {
		return nil, err
	}

	final := s.filter.Filter(matches)

	// Summary is best effort; the ranked list stands on its own
	summary := ""
	if len(final) > 0 {
		summary, err = s.summarize(ctx, final)
		if err != nil {
			log.Printf("Recommendation summary failed: %v", err)
			summary = ""
		}
	}

	return &model.RecommendResponse{
		Validation:      validation,
		Profile:         profile,
		Recommendations: final,
		Summary:         summary,
		Took:            time.Since(startTime).Milliseconds(),
	}, nil
}

// summarize asks the model for a user-facing digest of the recommended
// laptops, most expensive first.
func (s *RecommendationService) summarize(ctx context.Context, matches []model.LaptopMatch) (string, error) {
	byPrice := make([]model.LaptopMatch, len(matches))
	copy(byPrice, matches)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].PriceValue > byPrice[j].PriceValue
	})

	products, err := json.Marshal(byPrice)
	if err != nil {
		return "", fmt.Errorf("failed to encode products: %w", err)
	}

	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: summarySystemPrompt},
		{Role: model.RoleUser, Content: fmt.Sprintf("These are the user's products: %s", string(products))},
	}
	return s.completer.Complete(ctx, messages)
}
