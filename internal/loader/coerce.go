package loader

import (
	"math"
	"strconv"
	"strings"

	"paygap/domain/compensation"
)

// Cell coercion. Each rule degrades a single bad cell to a missing value and
// never fails the load: partial-column data loss is tolerated, file-level
// breakage is the reader's job.

// coerceNumeric applies the kind-specific cleaning rule and parses the
// remainder. The second result reports whether a non-empty cell failed to
// parse (an empty cell is missing, not a failure).
func coerceNumeric(raw string, kind compensation.FieldKind) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return compensation.MissingValue(), false
	}

	switch kind {
	case compensation.FieldRatio:
		// "1,447:1" keeps only the numerator.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		cleaned = strings.SplitN(cleaned, ":", 2)[0]
	case compensation.FieldCurrency:
		cleaned = strings.ReplaceAll(cleaned, "$", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	default:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	cleaned = strings.TrimSpace(cleaned)

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return compensation.MissingValue(), true
	}
	return val, false
}

// coerceString trims surrounding whitespace on designated text fields.
func coerceString(raw string) string {
	return strings.TrimSpace(raw)
}

// coerceIndustry normalizes the grouping label: empty and the literal "nan"
// the upstream export writes for absent industries both mean unknown.
func coerceIndustry(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.EqualFold(cleaned, "nan") {
		return ""
	}
	return cleaned
}
