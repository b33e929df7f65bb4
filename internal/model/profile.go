package model

// Bucket levels for requirement strength and laptop feature classification
const (
	BucketLow    = "low"
	BucketMedium = "medium"
	BucketHigh   = "high"
)

// BudgetFloor is the minimum acceptable budget in INR. The catalogue has no
// laptops below this price point.
const BudgetFloor = 25000

// ProfileKeys lists the five categorical requirement keys in canonical order.
var ProfileKeys = []string{
	"GPU Intensity",
	"Display Quality",
	"Portability",
	"Multitasking",
	"Processing Speed",
}

// UserProfile is the structured six-field requirement record extracted from
// the conversation. The five categorical fields hold a bucket value; Budget
// is the user's spending ceiling in INR.
type UserProfile struct {
	GPUIntensity    string `json:"gpu_intensity"`
	DisplayQuality  string `json:"display_quality"`
	Portability     string `json:"portability"`
	Multitasking    string `json:"multitasking"`
	ProcessingSpeed string `json:"processing_speed"`
	Budget          int    `json:"budget"`
}

// LaptopFeatures is the five-bucket classification of a catalogue item.
// It is a UserProfile without the budget concept.
type LaptopFeatures struct {
	GPUIntensity    string `json:"gpu_intensity"`
	DisplayQuality  string `json:"display_quality"`
	Portability     string `json:"portability"`
	Multitasking    string `json:"multitasking"`
	ProcessingSpeed string `json:"processing_speed"`
}

// Categories returns the categorical fields keyed by canonical name.
func (p *UserProfile) Categories() map[string]string {
	return map[string]string{
		"GPU Intensity":    p.GPUIntensity,
		"Display Quality":  p.DisplayQuality,
		"Portability":      p.Portability,
		"Multitasking":     p.Multitasking,
		"Processing Speed": p.ProcessingSpeed,
	}
}

// Categories returns the feature buckets keyed by canonical name.
func (f *LaptopFeatures) Categories() map[string]string {
	return map[string]string{
		"GPU Intensity":    f.GPUIntensity,
		"Display Quality":  f.DisplayQuality,
		"Portability":      f.Portability,
		"Multitasking":     f.Multitasking,
		"Processing Speed": f.ProcessingSpeed,
	}
}

// IsValidBucket reports whether v is one of the three allowed bucket values.
func IsValidBucket(v string) bool {
	return v == BucketLow || v == BucketMedium || v == BucketHigh
}

// BucketRank maps a bucket value to its comparable rank. Unrecognized values
// rank below low so an unknown feature never satisfies any requested level.
func BucketRank(v string) int {
	switch v {
	case BucketLow:
		return 0
	case BucketMedium:
		return 1
	case BucketHigh:
		return 2
	default:
		return -1
	}
}

// ValidationResult is the outcome of validating a canonical profile sentence.
// Reason is set only when the sentence is rejected.
type ValidationResult struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}
