package forms

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"katalog/internal/models"
)

// pricePattern accepts plain decimal prices with at most two decimal
// places: no signs, no thousands separators, no exponent, no trailing
// dot. "5." and "1e3" are rejected on purpose.
var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ValidationResult is the outcome of validating a ProductDraft. Each
// failing field carries exactly one message, the first rule it broke.
type ValidationResult struct {
	IsValid     bool              `json:"isValid"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

// PriceRangeResult is the outcome of validating a min/max price filter.
type PriceRangeResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// Validate checks every field of the draft independently and reports all
// failures at once. It never errors or panics; bad input is data, not an
// exception. Calling it twice on the same draft yields the same result.
func Validate(d ProductDraft) ValidationResult {
	errs := make(map[string]string)

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errs["name"] = "Product name is required"
	case utf8.RuneCountInString(name) < 3:
		errs["name"] = "Product name must be at least 3 characters"
	case utf8.RuneCountInString(name) > 50:
		errs["name"] = "Product name must be at most 50 characters"
	}

	if d.Price == "" {
		errs["price"] = "Price is required"
	} else if p, err := strconv.ParseFloat(d.Price, 64); err != nil || math.IsInf(p, 0) || !(p > 0) {
		errs["price"] = "Price must be a number greater than 0"
	} else if !pricePattern.MatchString(d.Price) {
		// Numerically fine but badly formatted, e.g. "10.999" or "1e3".
		errs["price"] = "Price can have at most 2 decimal places"
	}

	if _, ok := models.ParseCategory(d.Category); !ok {
		errs["category"] = "Category is required"
	}

	if d.StockQuantity == "" {
		errs["stockQuantity"] = "Stock quantity is required"
	} else if qty, ok := parseLeadingInt(d.StockQuantity); !ok || qty < 0 {
		errs["stockQuantity"] = "Stock quantity must be a non-negative integer"
	}

	if utf8.RuneCountInString(d.Description) > 200 {
		errs["description"] = "Description must be at most 200 characters"
	}

	return ValidationResult{IsValid: len(errs) == 0, FieldErrors: errs}
}

// ValidatePriceRange checks the min/max bounds of a catalog price filter.
// An empty bound means "no bound" and never fails on its own.
func ValidatePriceRange(min, max string) PriceRangeResult {
	var minVal, maxVal float64
	if min != "" {
		v, ok := parsePrice(min)
		if !ok {
			return PriceRangeResult{Error: "Minimum price must be a positive number"}
		}
		minVal = v
	}
	if max != "" {
		v, ok := parsePrice(max)
		if !ok {
			return PriceRangeResult{Error: "Maximum price must be a positive number"}
		}
		maxVal = v
	}
	if min != "" && max != "" && minVal > maxVal {
		return PriceRangeResult{Error: "Minimum price cannot be greater than maximum price"}
	}
	return PriceRangeResult{IsValid: true}
}

// parsePrice accepts a non-negative price in the same strict format the
// form uses, returning its numeric value.
func parsePrice(s string) (float64, bool) {
	if !pricePattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseLeadingInt parses the longest leading integer of s, ignoring any
// trailing garbage, so "5.9" yields 5. This truncating parse is what the
// form has always done for stock quantities; strict integer validation
// would be a behavior change and needs a product decision first.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
