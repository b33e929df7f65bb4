package utils

import "testing"

func TestFirstNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{
			name:  "Plain number",
			input: "50000",
			want:  50000,
			ok:    true,
		},
		{
			name:  "Number with currency suffix",
			input: "300000 INR",
			want:  300000,
			ok:    true,
		},
		{
			name:  "Number embedded in text",
			input: "of 75000 or thereabouts",
			want:  75000,
			ok:    true,
		},
		{
			name:  "Indian comma grouping",
			input: "1,50,000",
			want:  150000,
			ok:    true,
		},
		{
			name:  "Western comma grouping",
			input: "Rs. 79,999",
			want:  79999,
			ok:    true,
		},
		{
			name:  "First of several numbers wins",
			input: "45000 to 60000",
			want:  45000,
			ok:    true,
		},
		{
			name:  "No number",
			input: "flexible",
			want:  0,
			ok:    false,
		},
		{
			name:  "Empty string",
			input: "",
			want:  0,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("FirstNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("FirstNumber(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	price, ok := ParsePrice("35,000")
	if !ok || price != 35000 {
		t.Errorf("ParsePrice(\"35,000\") = %d, %v; want 35000, true", price, ok)
	}

	if _, ok := ParsePrice("contact us"); ok {
		t.Error("ParsePrice should fail on non-numeric price text")
	}
}
