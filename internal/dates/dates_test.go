package dates

import (
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 45, 0, 0, time.UTC)
	if got := Today(now); got != "2025-06-15" {
		t.Errorf("Today = %q", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"sunday goes back to monday", time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), "2025-06-09"},
		{"monday stays", time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC), "2025-06-09"},
		{"wednesday", time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC), "2025-06-09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.now).Format(Layout); got != tt.want {
				t.Errorf("StartOfWeek = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveKeyword(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		value string
		want  string
		ok    bool
	}{
		{"today", "2025-06-15", true},
		{"TODAY", "2025-06-15", true},
		{" tomorrow ", "2025-06-16", true},
		{"yesterday", "2025-06-14", true},
		{"2025-06-15", "", false},
		{"someday", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveKeyword(tt.value, now)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ResolveKeyword(%q) = %q, %v; want %q, %v", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}
