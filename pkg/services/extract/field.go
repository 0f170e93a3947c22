package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
)

// FieldMatch is a successful alias lookup: the parsed value and the alias
// that matched it.
type FieldMatch struct {
	Value float64
	Key   string
}

// Field tries the alias keys strictly in the order given and returns the
// first one present whose value parses to a finite number. Nil when no
// alias matches.
func Field(record domain.ExportRecord, aliases ...string) *FieldMatch {
	if record == nil {
		return nil
	}
	for _, key := range aliases {
		raw, ok := record[key]
		if !ok {
			continue
		}
		v, ok := Number(raw)
		if !ok {
			continue
		}
		return &FieldMatch{Value: v, Key: key}
	}
	return nil
}

// numericNormalizer strips thousands separators and maps unicode minus
// variants to ASCII before parsing.
var numericNormalizer = strings.NewReplacer(
	"−", "-", // minus sign
	"–", "-", // en dash
	"—", "-", // em dash
	",", "",
)

// Number parses a loosely-typed value into a finite float64.
func Number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return ParseNumber(v)
	}
	return 0, false
}

// ParseNumber parses numeric text, tolerating thousands separators and
// unicode minus variants. Non-finite results are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(numericNormalizer.Replace(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(v)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
