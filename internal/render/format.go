package render

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"AltRadar/internal/model"
)

// Placeholder is shown for absent values.
const Placeholder = "-"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber formats v with en-US digit grouping and at most two fraction digits.
// An absent value yields Placeholder.
func FormatNumber(v model.OptionalFloat) string {
	f, ok := v.Get()
	if !ok {
		return Placeholder
	}
	return FormatFloat(f)
}

// FormatFloat is FormatNumber for a value that is always present.
// Halves round away from zero.
func FormatFloat(f float64) string {
	return printer.Sprint(number.Decimal(math.Round(f*100)/100, number.MaxFractionDigits(2)))
}

// FormatFixed formats v with exactly digits fraction digits and no grouping,
// rounding half away from zero. An absent value yields Placeholder.
func FormatFixed(v model.OptionalFloat, digits int) string {
	f, ok := v.Get()
	if !ok {
		return Placeholder
	}
	scale := math.Pow(10, float64(digits))
	return strconv.FormatFloat(math.Round(f*scale)/scale, 'f', digits, 64)
}

// OrPlaceholder returns s, or Placeholder when s is empty.
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
