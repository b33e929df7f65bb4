package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/anusha761/shopassist/internal/model"
	"github.com/anusha761/shopassist/internal/utils"
)

// profileFunctions is the function-calling schema enumerating exactly the six
// profile keys with their typed constraints.
var profileFunctions = []FunctionDefinition{
	{
		Name:        "extract_user_info",
		Description: "Get the user laptop information from the body of the input text",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"GPU Intensity": {
					"type": "string",
					"enum": ["low", "medium", "high"],
					"description": "GPU intensity of the requested laptop, based on the importance stated in the text"
				},
				"Display Quality": {
					"type": "string",
					"enum": ["low", "medium", "high"],
					"description": "Display quality of the requested laptop, based on the importance stated in the text"
				},
				"Portability": {
					"type": "string",
					"enum": ["low", "medium", "high"],
					"description": "Portability of the requested laptop, based on the importance stated in the text"
				},
				"Multitasking": {
					"type": "string",
					"enum": ["low", "medium", "high"],
					"description": "Multitasking ability of the requested laptop, based on the importance stated in the text"
				},
				"Processing Speed": {
					"type": "string",
					"enum": ["low", "medium", "high"],
					"description": "Processing speed of the requested laptop, based on the importance stated in the text"
				},
				"Budget": {
					"type": "integer",
					"description": "The budget of the requested laptop. The values are integers."
				}
			},
			"required": ["GPU Intensity", "Display Quality", "Portability", "Multitasking", "Processing Speed"]
		}`),
	},
}

// extractedProfile mirrors the function-call argument object. Budget is kept
// loose because models sometimes return it as a formatted string.
type extractedProfile struct {
	GPUIntensity    string          `json:"GPU Intensity"`
	DisplayQuality  string          `json:"Display Quality"`
	Portability     string          `json:"Portability"`
	Multitasking    string          `json:"Multitasking"`
	ProcessingSpeed string          `json:"Processing Speed"`
	Budget          json.RawMessage `json:"Budget"`
}

// ProfileExtractor turns free-text profile statements into structured
// UserProfile records via a schema-constrained model call.
type ProfileExtractor struct {
	completer StructuredCompleter
}

// NewProfileExtractor creates a new profile extractor
func NewProfileExtractor(completer StructuredCompleter) *ProfileExtractor {
	return &ProfileExtractor{completer: completer}
}

// Extract parses text into a UserProfile. When includeBudget is false the
// Budget field is forced to 0; catalogue-item features have no budget concept.
// A non-conformant model response is retried once, then surfaced as an
// extraction error; field values are never fabricated.
func (e *ProfileExtractor) Extract(ctx context.Context, text string, includeBudget bool) (*model.UserProfile, error) {
	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: "You are a helpful assistant."},
		{Role: model.RoleUser, Content: text},
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			log.Printf("Retrying structured extraction after error: %v", lastErr)
		}

		args, err := e.completer.CompleteFunctionCall(ctx, messages, profileFunctions)
		if err != nil {
			lastErr = err
			continue
		}

		profile, err := e.parseArguments(args, includeBudget)
		if err != nil {
			lastErr = err
			continue
		}
		return profile, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrExtraction, lastErr)
}

// parseArguments decodes and validates the function-call arguments
func (e *ProfileExtractor) parseArguments(args json.RawMessage, includeBudget bool) (*model.UserProfile, error) {
	var raw extractedProfile
	if err := utils.ParseModelJSON(string(args), &raw); err != nil {
		return nil, fmt.Errorf("unparseable function arguments: %w", err)
	}

	profile := &model.UserProfile{
		GPUIntensity:    strings.ToLower(strings.TrimSpace(raw.GPUIntensity)),
		DisplayQuality:  strings.ToLower(strings.TrimSpace(raw.DisplayQuality)),
		Portability:     strings.ToLower(strings.TrimSpace(raw.Portability)),
		Multitasking:    strings.ToLower(strings.TrimSpace(raw.Multitasking)),
		ProcessingSpeed: strings.ToLower(strings.TrimSpace(raw.ProcessingSpeed)),
	}

	for key, value := range profile.Categories() {
		if !model.IsValidBucket(value) {
			return nil, fmt.Errorf("invalid value %q for %s, must be one of low, medium, high", value, key)
		}
	}

	if includeBudget {
		budget, err := parseBudgetValue(raw.Budget)
		if err != nil {
			return nil, err
		}
		profile.Budget = budget
	}

	return profile, nil
}

// parseBudgetValue accepts an integer or a budget-bearing string ("75000 INR")
func parseBudgetValue(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing Budget value")
	}

	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if n, ok := utils.FirstNumber(asString); ok {
			return n, nil
		}
		return 0, fmt.Errorf("no numeric value in Budget %q", asString)
	}

	return 0, fmt.Errorf("unsupported Budget value: %s", string(raw))
}
