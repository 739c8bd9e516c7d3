package option

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Option is the normalized form of a product variant or measurement.
// Raw values arrive in several encodings (bare label string, JSON
// string, structured object); everything downstream of Parse only ever
// sees this shape.
type Option struct {
	Label    string   `json:"label"`
	ImageRef *string  `json:"imageRef,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Parse normalizes a single raw variant/measurement value. It returns
// nil for values that carry no usable label. Parse is idempotent:
// feeding an Option back in yields an equal Option.
func Parse(raw any) *Option {
	switch v := raw.(type) {
	case nil:
		return nil
	case Option:
		return normalize(v)
	case *Option:
		if v == nil {
			return nil
		}
		return normalize(*v)
	case string:
		return parseString(v)
	case map[string]any:
		return parseObject(v)
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(v, &decoded); err != nil {
			return nil
		}
		return Parse(decoded)
	default:
		return nil
	}
}

// ParseList normalizes a raw option list, dropping entries that do not
// produce a label-bearing option.
func ParseList(raws []any) []Option {
	out := make([]Option, 0, len(raws))
	for _, raw := range raws {
		if o := Parse(raw); o != nil {
			out = append(out, *o)
		}
	}
	return out
}

// ParseColumn decodes a JSONB column holding a raw option list. A NULL
// or empty column yields an empty list; a malformed column is treated
// the same way rather than failing the row.
func ParseColumn(data []byte) []Option {
	if len(data) == 0 {
		return []Option{}
	}
	var raws []any
	if err := json.Unmarshal(data, &raws); err != nil {
		return []Option{}
	}
	return ParseList(raws)
}

// Label unwraps a stored selection to its bare label. Cart rows may
// hold either the label itself or a JSON-encoded object containing
// one; both compare equal once unwrapped.
func Label(raw *string) *string {
	if raw == nil {
		return nil
	}
	o := Parse(*raw)
	if o == nil {
		return nil
	}
	return &o.Label
}

func parseString(s string) *Option {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	// Only strings shaped like a JSON object or array that mention a
	// label are worth a decode attempt; anything else, including
	// malformed JSON, is the label itself.
	if looksLikeJSON(trimmed) && strings.Contains(trimmed, "label") {
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			if o := parseDecoded(decoded); o != nil {
				return o
			}
		}
	}
	return &Option{Label: trimmed}
}

func parseDecoded(decoded any) *Option {
	switch v := decoded.(type) {
	case map[string]any:
		return parseObject(v)
	case []any:
		if len(v) > 0 {
			return Parse(v[0])
		}
	}
	return nil
}

func parseObject(m map[string]any) *Option {
	label, _ := m["label"].(string)
	label = strings.TrimSpace(label)
	if label == "" {
		return nil
	}
	o := &Option{Label: label}
	if ref, ok := m["imageRef"].(string); ok && strings.TrimSpace(ref) != "" {
		r := strings.TrimSpace(ref)
		o.ImageRef = &r
	}
	o.Price = coerceFloat(m["price"])
	return o
}

func normalize(o Option) *Option {
	label := strings.TrimSpace(o.Label)
	if label == "" {
		return nil
	}
	out := &Option{Label: label, ImageRef: o.ImageRef}
	if o.ImageRef != nil && strings.TrimSpace(*o.ImageRef) == "" {
		out.ImageRef = nil
	}
	if o.Price != nil && !math.IsNaN(*o.Price) {
		out.Price = o.Price
	}
	return out
}

// coerceFloat accepts numeric and numeric-string price forms. Anything
// that does not parse to a real number is dropped.
func coerceFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		if !math.IsNaN(n) {
			return &n
		}
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case json.Number:
		if f, err := n.Float64(); err == nil && !math.IsNaN(f) {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil && !math.IsNaN(f) {
			return &f
		}
	}
	return nil
}

func looksLikeJSON(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}
