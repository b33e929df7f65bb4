package utils

import (
	"reflect"
	"testing"
)

func TestParseModelJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name:  "Pure JSON",
			input: `{"GPU Intensity": "high", "Budget": 80000}`,
			want: map[string]interface{}{
				"GPU Intensity": "high",
				"Budget":        float64(80000),
			},
			wantErr: false,
		},
		{
			name: "JSON in markdown code block",
			input: "```json\n" +
				`{"Portability": "medium"}` + "\n```",
			want: map[string]interface{}{
				"Portability": "medium",
			},
			wantErr: false,
		},
		{
			name:  "JSON with surrounding prose",
			input: `Here is the extracted profile: {"Multitasking": "low"} as requested.`,
			want: map[string]interface{}{
				"Multitasking": "low",
			},
			wantErr: false,
		},
		{
			name:  "Trailing comma",
			input: `{"Display Quality": "high",}`,
			want: map[string]interface{}{
				"Display Quality": "high",
			},
			wantErr: false,
		},
		{
			name:  "Unquoted keys",
			input: `{Budget: 45000}`,
			want: map[string]interface{}{
				"Budget": float64(45000),
			},
			wantErr: false,
		},
		{
			name:  "Byte order mark prefix",
			input: "\ufeff" + `{"Processing Speed": "high"}`,
			want: map[string]interface{}{
				"Processing Speed": "high",
			},
			wantErr: false,
		},
		{
			name:    "Empty string",
			input:   "",
			want:    nil,
			wantErr: true,
		},
		{
			name:    "No JSON at all",
			input:   "I need a laptop with high GPU Intensity",
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]interface{}
			err := ParseModelJSON(tt.input, &got)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModelJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseModelJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}
