package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/anusha761/shopassist/internal/model"
	"github.com/anusha761/shopassist/internal/utils"
)

// Classifier buckets one laptop description into the canonical feature string
type Classifier interface {
	Classify(ctx context.Context, description string) (string, error)
}

// Extractor turns free text into a structured profile record
type Extractor interface {
	Extract(ctx context.Context, text string, includeBudget bool) (*model.UserProfile, error)
}

// CatalogueSource provides the laptop catalogue for one matching run
type CatalogueSource interface {
	ListLaptops(ctx context.Context) ([]model.Laptop, error)
}

// CatalogueMatcher matches a validated user profile against the catalogue:
// budget filter, per-row feature derivation, deterministic scoring, ranking.
type CatalogueMatcher struct {
	catalogue  CatalogueSource
	classifier Classifier
	extractor  Extractor
	topK       int
	workers    int
}

// NewCatalogueMatcher creates a new catalogue matcher
func NewCatalogueMatcher(catalogue CatalogueSource, classifier Classifier, extractor Extractor, topK, workers int) *CatalogueMatcher {
	if workers < 1 {
		workers = 1
	}
	return &CatalogueMatcher{
		catalogue:  catalogue,
		classifier: classifier,
		extractor:  extractor,
		topK:       topK,
		workers:    workers,
	}
}

// Match returns the top-ranked catalogue rows for the profile. An empty
// result (everything above budget, or no strong rows) is a valid outcome,
// not an error.
func (m *CatalogueMatcher) Match(ctx context.Context, profile *model.UserProfile) ([]model.LaptopMatch, error) {
	laptops, err := m.catalogue.ListLaptops(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	// Budget is a hard filter, not a soft criterion
	candidates := make([]model.LaptopMatch, 0, len(laptops))
	for _, laptop := range laptops {
		price, ok := utils.ParsePrice(laptop.Price)
		if !ok {
			log.Printf("Skipping laptop %d: unparseable price %q", laptop.ID, laptop.Price)
			continue
		}
		if price <= profile.Budget {
			candidates = append(candidates, model.LaptopMatch{Laptop: laptop, PriceValue: price})
		}
	}
	if len(candidates) == 0 {
		return []model.LaptopMatch{}, nil
	}

	// Derive features per row concurrently. Each worker writes only its own
	// index; a failed row is dropped without aborting completed ones.
	m.deriveFeatures(ctx, candidates)

	scored := make([]model.LaptopMatch, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Features == nil {
			continue
		}
		candidate.Score = scoreLaptop(profile, candidate.Features)
		scored = append(scored, candidate)
	}

	// Stable sort keeps catalogue order on ties
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > m.topK {
		scored = scored[:m.topK]
	}
	return scored, nil
}

// deriveFeatures runs classify+extract for each candidate with a bounded
// worker pool, filling Features in place.
func (m *CatalogueMatcher) deriveFeatures(ctx context.Context, candidates []model.LaptopMatch) {
	workers := m.workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				features, err := m.deriveRow(ctx, &candidates[i].Laptop)
				if err != nil {
					log.Printf("Skipping laptop %d: %v", candidates[i].ID, err)
					continue
				}
				candidates[i].Features = features
			}
		}()
	}

	for i := range candidates {
		indices <- i
	}
	close(indices)
	wg.Wait()
}

// deriveRow performs the two-hop classification for one catalogue row:
// description to feature string, feature string to enum record.
func (m *CatalogueMatcher) deriveRow(ctx context.Context, laptop *model.Laptop) (*model.LaptopFeatures, error) {
	featureString, err := m.classifier.Classify(ctx, laptop.Description)
	if err != nil {
		return nil, err
	}

	record, err := m.extractor.Extract(ctx, featureString, false)
	if err != nil {
		return nil, err
	}

	return &model.LaptopFeatures{
		GPUIntensity:    record.GPUIntensity,
		DisplayQuality:  record.DisplayQuality,
		Portability:     record.Portability,
		Multitasking:    record.Multitasking,
		ProcessingSpeed: record.ProcessingSpeed,
	}, nil
}

// scoreLaptop counts the categorical keys where the laptop's bucket meets or
// exceeds the requested bucket. Budget is excluded; an unrecognized laptop
// bucket ranks below every requested level and never scores.
func scoreLaptop(profile *model.UserProfile, features *model.LaptopFeatures) int {
	wanted := profile.Categories()
	got := features.Categories()

	score := 0
	for key, userValue := range wanted {
		if model.BucketRank(got[key]) >= model.BucketRank(userValue) {
			score++
		}
	}
	return score
}

// RecommendationFilter keeps only ranked entries above the minimum score.
type RecommendationFilter struct {
	minScore int
}

// NewRecommendationFilter creates a filter with the given score threshold
func NewRecommendationFilter(minScore int) *RecommendationFilter {
	return &RecommendationFilter{minScore: minScore}
}

// Filter returns the entries with Score strictly above the threshold. An
// empty result means "no strong match" and is not an error.
func (f *RecommendationFilter) Filter(matches []model.LaptopMatch) []model.LaptopMatch {
	kept := make([]model.LaptopMatch, 0, len(matches))
	for _, match := range matches {
		if match.Score > f.minScore {
			kept = append(kept, match)
		}
	}
	return kept
}
