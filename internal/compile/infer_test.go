package compile

import (
	"reflect"
	"testing"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Kind
	}{
		{"true", "true", KindBoolean},
		{"false", "false", KindBoolean},
		{"integer", "42", KindNumber},
		{"decimal", "3.14", KindNumber},
		{"date", "2024-12-31", KindDate},
		{"datetime prefix still date", "2024-12-31T10:00:00Z", KindDate},
		{"http url", "http://example.com", KindURL},
		{"https url", "https://example.com/page", KindURL},
		{"email", "freya@asgard.realm", KindEmail},
		{"comma list", "bug,urgent", KindMultiValue},
		{"plain text", "Done", KindDefault},
		{"empty", "", KindDefault},

		// Order sensitivity: several rules overlap, and the declared order
		// decides. These cases pin it.
		{"comma-joined dates are a list, not a date", "2024-12-31,2025-01-01", KindMultiValue},
		{"comma-joined numbers are a list, not numbers", "42,43", KindMultiValue},
		{"negative number is not a number", "-5", KindDefault},
		{"url with comma still url", "https://example.com/a,b", KindURL},
		{"email with comma still email", "a@b.com,c", KindEmail},
		{"capitalized True is text", "True", KindDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Infer(tt.value); got != tt.want {
				t.Errorf("Infer(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestInferDeterministic(t *testing.T) {
	for _, v := range []string{"true", "42", "2024-01-01", "x,y", "hello"} {
		first := Infer(v)
		for i := 0; i < 3; i++ {
			if got := Infer(v); got != first {
				t.Fatalf("Infer(%q) changed between calls: %v then %v", v, first, got)
			}
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"simple", "a,b", []string{"a", "b"}},
		{"trims spaces", " bug , urgent ", []string{"bug", "urgent"}},
		{"drops empties", "a,,b,", []string{"a", "b"}},
		{"single", "only", []string{"only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.value); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
