package option

import (
	"reflect"
	"testing"
)

func TestParse_PlainString(t *testing.T) {
	o := Parse("  Red ")
	if o == nil {
		t.Fatal("expected an option for a plain string")
	}
	if o.Label != "Red" {
		t.Fatalf("expected trimmed label 'Red', got %q", o.Label)
	}
	if o.Price != nil {
		t.Fatalf("plain string should carry no price, got %v", *o.Price)
	}
}

func TestParse_EmptyAndNil(t *testing.T) {
	if o := Parse(""); o != nil {
		t.Fatalf("empty string should yield nil, got %+v", o)
	}
	if o := Parse("   "); o != nil {
		t.Fatalf("blank string should yield nil, got %+v", o)
	}
	if o := Parse(nil); o != nil {
		t.Fatalf("nil should yield nil, got %+v", o)
	}
}

func TestParse_JSONString(t *testing.T) {
	o := Parse(`{"label":"500ml","price":"89.50"}`)
	if o == nil {
		t.Fatal("expected an option for a JSON string")
	}
	if o.Label != "500ml" {
		t.Fatalf("unexpected label %q", o.Label)
	}
	if o.Price == nil || *o.Price != 89.5 {
		t.Fatalf("expected numeric-string price coerced to 89.5, got %v", o.Price)
	}
}

func TestParse_JSONArrayString(t *testing.T) {
	o := Parse(`[{"label":"Blue","imageRef":"/img/blue.png"}]`)
	if o == nil {
		t.Fatal("expected an option for a JSON array string")
	}
	if o.Label != "Blue" {
		t.Fatalf("unexpected label %q", o.Label)
	}
	if o.ImageRef == nil || *o.ImageRef != "/img/blue.png" {
		t.Fatalf("expected imageRef preserved, got %v", o.ImageRef)
	}
}

func TestParse_MalformedJSONFallsBackToLabel(t *testing.T) {
	raw := `{"label":"Broken`
	o := Parse(raw)
	if o == nil {
		t.Fatal("malformed JSON should fall back to raw string label")
	}
	if o.Label != raw {
		t.Fatalf("expected raw string as label, got %q", o.Label)
	}
}

func TestParse_BracedStringWithoutLabelIsLiteral(t *testing.T) {
	raw := `{size: large}`
	o := Parse(raw)
	if o == nil || o.Label != raw {
		t.Fatalf("string without 'label' substring must stay literal, got %+v", o)
	}
}

func TestParse_Object(t *testing.T) {
	o := Parse(map[string]any{"label": " XL ", "price": 120.0})
	if o == nil {
		t.Fatal("expected an option")
	}
	if o.Label != "XL" {
		t.Fatalf("unexpected label %q", o.Label)
	}
	if o.Price == nil || *o.Price != 120 {
		t.Fatalf("expected price 120, got %v", o.Price)
	}
}

func TestParse_ObjectWithUnparsablePriceDropsPrice(t *testing.T) {
	o := Parse(map[string]any{"label": "XL", "price": "not-a-number"})
	if o == nil {
		t.Fatal("expected an option")
	}
	if o.Price != nil {
		t.Fatalf("unparsable price must be dropped, got %v", *o.Price)
	}
}

func TestParse_ObjectWithEmptyLabelIsNil(t *testing.T) {
	if o := Parse(map[string]any{"label": "  ", "price": 10.0}); o != nil {
		t.Fatalf("empty label must yield nil, got %+v", o)
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []any{
		"Red",
		`{"label":"500ml","price":49}`,
		map[string]any{"label": "XL", "imageRef": "/x.png", "price": "15"},
	}
	for _, in := range inputs {
		first := Parse(in)
		if first == nil {
			t.Fatalf("expected option for %v", in)
		}
		second := Parse(*first)
		if second == nil {
			t.Fatalf("re-parse returned nil for %+v", first)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("parse is not a fixed point: %+v vs %+v", first, second)
		}
	}
}

func TestParseList_FiltersMalformed(t *testing.T) {
	out := ParseList([]any{"Red", "", nil, map[string]any{"label": ""}, "Blue"})
	if len(out) != 2 {
		t.Fatalf("expected 2 surviving options, got %d", len(out))
	}
	if out[0].Label != "Red" || out[1].Label != "Blue" {
		t.Fatalf("unexpected labels %+v", out)
	}
}

func TestParseColumn(t *testing.T) {
	out := ParseColumn([]byte(`["Red", {"label":"Blue","price":5}]`))
	if len(out) != 2 {
		t.Fatalf("expected 2 options, got %d", len(out))
	}
	if out[1].Price == nil || *out[1].Price != 5 {
		t.Fatalf("expected price 5 on second option, got %v", out[1].Price)
	}

	if got := ParseColumn(nil); len(got) != 0 {
		t.Fatalf("nil column should yield empty list, got %v", got)
	}
	if got := ParseColumn([]byte(`not json`)); len(got) != 0 {
		t.Fatalf("malformed column should yield empty list, got %v", got)
	}
}

func TestLabel_Unwrap(t *testing.T) {
	raw := `{"label":"1L"}`
	got := Label(&raw)
	if got == nil || *got != "1L" {
		t.Fatalf("expected unwrapped label '1L', got %v", got)
	}

	bare := "1L"
	got2 := Label(&bare)
	if got2 == nil || *got2 != "1L" {
		t.Fatalf("expected bare label passthrough, got %v", got2)
	}

	if Label(nil) != nil {
		t.Fatal("nil selection must stay nil")
	}
}
