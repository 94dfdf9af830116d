package render

import (
	"testing"

	"AltRadar/internal/model"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   model.OptionalFloat
		want string
	}{
		{model.None(), "-"},
		{model.Some(1234.5), "1,234.5"},
		{model.Some(1234.567), "1,234.57"},
		{model.Some(0), "0"},
		{model.Some(1000000), "1,000,000"},
		{model.Some(12), "12"},
		{model.Some(0.125), "0.13"},
		{model.Some(1234.125), "1,234.13"},
		{model.Some(-0.125), "-0.13"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%+v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in     model.OptionalFloat
		digits int
		want   string
	}{
		{model.None(), 2, "-"},
		{model.Some(55.556), 2, "55.56"},
		{model.Some(70), 2, "70.00"},
		{model.Some(84.5), 0, "85"},
		{model.Some(84.4), 0, "84"},
	}
	for _, tt := range tests {
		if got := FormatFixed(tt.in, tt.digits); got != tt.want {
			t.Errorf("FormatFixed(%+v, %d): expected %q, got %q", tt.in, tt.digits, tt.want, got)
		}
	}
}

func TestOrPlaceholder(t *testing.T) {
	if OrPlaceholder("") != "-" {
		t.Error("empty string should become placeholder")
	}
	if OrPlaceholder("HIGH") != "HIGH" {
		t.Error("non-empty string should pass through")
	}
}
