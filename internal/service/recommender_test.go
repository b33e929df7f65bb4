package service

import (
	"context"
	"strings"
	"testing"

	"github.com/anusha761/shopassist/internal/model"
)

func newTestRecommender(catalogue CatalogueSource, extractor Extractor, completer FreeTextCompleter) *RecommendationService {
	matcher := NewCatalogueMatcher(catalogue, echoClassifier{}, extractor, 3, 2)
	return NewRecommendationService(
		NewProfileValidator(model.BudgetFloor),
		extractor,
		matcher,
		NewRecommendationFilter(2),
		completer,
	)
}

// pipelineExtractor serves both the user sentence and the catalogue feature
// strings, mimicking the shared schema-constrained extraction.
type pipelineExtractor struct {
	user     *model.UserProfile
	features map[string]*model.UserProfile
}

func (p *pipelineExtractor) Extract(ctx context.Context, text string, includeBudget bool) (*model.UserProfile, error) {
	if includeBudget {
		return p.user, nil
	}
	return (&mapExtractor{profiles: p.features}).Extract(ctx, text, includeBudget)
}

func TestRecommendationService_RejectedSentence(t *testing.T) {
	recommender := newTestRecommender(&stubCatalogue{}, &mapExtractor{}, &scriptedCompleter{})

	sentence := "I need a laptop with high GPU Intensity, medium Display Quality, high Portability, high Multitasking, high Processing Speed and a Budget of 10000."
	response, err := recommender.Recommend(context.Background(), sentence)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if response.Validation.Accepted {
		t.Fatal("Sentence below the budget floor must be rejected")
	}
	if response.Validation.Reason == "" {
		t.Error("Rejected response must carry the validation reason")
	}
	if len(response.Recommendations) != 0 {
		t.Errorf("Rejected sentence produced %d recommendations, want 0", len(response.Recommendations))
	}
	if response.Profile != nil {
		t.Error("Rejected sentence must not reach extraction")
	}
}

func TestRecommendationService_Recommend(t *testing.T) {
	userProfile := allHigh()
	userProfile.Budget = 100000

	catalogue := &stubCatalogue{laptops: []model.Laptop{
		{ID: 1, ModelName: "Aspire", Description: "weak", Price: "35,000"},
		{ID: 2, ModelName: "Blade", Description: "strong", Price: "95,000"},
		{ID: 3, ModelName: "Carbon", Description: "strong", Price: "80,000"},
		{ID: 4, ModelName: "Dominator", Description: "strong", Price: "1,50,000"},
	}}
	extractor := &pipelineExtractor{
		user: userProfile,
		features: map[string]*model.UserProfile{
			"weak":   allLow(),
			"strong": allHigh(),
		},
	}
	completer := &scriptedCompleter{replies: []string{"1. Blade at 95000 ... 2. Carbon at 80000 ..."}}

	recommender := newTestRecommender(catalogue, extractor, completer)

	sentence := "I need a laptop with high GPU Intensity, high Display Quality, high Portability, high Multitasking, high Processing Speed and a Budget of 100000."
	response, err := recommender.Recommend(context.Background(), sentence)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !response.Validation.Accepted {
		t.Fatalf("Valid sentence rejected: %s", response.Validation.Reason)
	}

	// Dominator is over budget, Aspire scores 0; the two strong rows survive
	if len(response.Recommendations) != 2 {
		t.Fatalf("Recommend() returned %d rows, want 2", len(response.Recommendations))
	}
	for _, match := range response.Recommendations {
		if match.Score <= 2 {
			t.Errorf("Laptop %d with score %d passed the filter", match.ID, match.Score)
		}
		if match.PriceValue > userProfile.Budget {
			t.Errorf("Laptop %d priced %d exceeds the budget", match.ID, match.PriceValue)
		}
	}
	if response.Summary == "" {
		t.Error("Recommend() should attach the model summary when rows exist")
	}
	if !strings.Contains(response.Summary, "Blade") {
		t.Errorf("Summary = %q, want the scripted digest", response.Summary)
	}
}

func TestRecommendationService_SummaryIsBestEffort(t *testing.T) {
	userProfile := allLow()
	userProfile.Budget = 100000

	catalogue := &stubCatalogue{laptops: []model.Laptop{
		{ID: 1, Description: "strong", Price: "50000"},
	}}
	extractor := &pipelineExtractor{
		user:     userProfile,
		features: map[string]*model.UserProfile{"strong": allHigh()},
	}
	// No scripted reply: the summary call fails
	recommender := newTestRecommender(catalogue, extractor, &scriptedCompleter{})

	sentence := "I need a laptop with low GPU Intensity, low Display Quality, low Portability, low Multitasking, low Processing Speed and a Budget of 100000."
	response, err := recommender.Recommend(context.Background(), sentence)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(response.Recommendations) != 1 {
		t.Fatalf("Recommend() returned %d rows, want 1", len(response.Recommendations))
	}
	if response.Summary != "" {
		t.Errorf("Failed summary should leave Summary empty, got %q", response.Summary)
	}
}

func TestRecommendationService_BudgetFromSentence(t *testing.T) {
	// The model returns a mangled budget; the value from the validated
	// sentence wins, so the 50000 row stays affordable.
	userProfile := allLow()
	userProfile.Budget = 30000

	catalogue := &stubCatalogue{laptops: []model.Laptop{
		{ID: 1, Description: "strong", Price: "50000"},
	}}
	extractor := &pipelineExtractor{
		user:     userProfile,
		features: map[string]*model.UserProfile{"strong": allHigh()},
	}
	completer := &scriptedCompleter{replies: []string{"1. ..."}}
	recommender := newTestRecommender(catalogue, extractor, completer)

	sentence := "I need a laptop with low GPU Intensity, low Display Quality, low Portability, low Multitasking, low Processing Speed and a Budget of 100000."
	response, err := recommender.Recommend(context.Background(), sentence)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if response.Profile.Budget != 100000 {
		t.Errorf("Profile.Budget = %d, want the sentence value 100000", response.Profile.Budget)
	}
	if len(response.Recommendations) != 1 {
		t.Errorf("Recommend() returned %d rows, want 1", len(response.Recommendations))
	}
}

func TestRecommendationService_NoStrongMatch(t *testing.T) {
	userProfile := allHigh()
	userProfile.Budget = 100000

	catalogue := &stubCatalogue{laptops: []model.Laptop{
		{ID: 1, Description: "weak", Price: "50000"},
	}}
	extractor := &pipelineExtractor{
		user:     userProfile,
		features: map[string]*model.UserProfile{"weak": allLow()},
	}
	recommender := newTestRecommender(catalogue, extractor, &scriptedCompleter{})

	sentence := "I need a laptop with high GPU Intensity, high Display Quality, high Portability, high Multitasking, high Processing Speed and a Budget of 100000."
	response, err := recommender.Recommend(context.Background(), sentence)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !response.Validation.Accepted {
		t.Fatal("Valid sentence should be accepted")
	}
	if len(response.Recommendations) != 0 {
		t.Errorf("Weak-only catalogue produced %d recommendations, want 0", len(response.Recommendations))
	}
	if response.Summary != "" {
		t.Errorf("Empty result should carry no summary, got %q", response.Summary)
	}
}
