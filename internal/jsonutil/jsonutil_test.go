package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	var v map[string]interface{}
	if err := UnmarshalWithContext([]byte(`{"a":1}`), &v, "parse config"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := UnmarshalWithContext([]byte(`{bad`), &v, "parse config")
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error should carry context, got %q", err.Error())
	}
}

func TestUnmarshalSafe(t *testing.T) {
	var v map[string]interface{}
	if !UnmarshalSafe([]byte(`{"a":1}`), &v) {
		t.Error("expected success for valid JSON")
	}
	if UnmarshalSafe([]byte(`{bad`), &v) {
		t.Error("expected false for malformed JSON")
	}
	if UnmarshalSafe(nil, &v) {
		t.Error("expected false for empty input")
	}
}

func TestGetFloat(t *testing.T) {
	m := map[string]interface{}{"n": 65.0, "s": "65"}

	if v, ok := GetFloat(m, "n"); !ok || v != 65 {
		t.Errorf("GetFloat(n): got (%v, %v)", v, ok)
	}
	if _, ok := GetFloat(m, "s"); ok {
		t.Error("GetFloat(s): string should not read as a number")
	}
	if _, ok := GetFloat(m, "missing"); ok {
		t.Error("GetFloat(missing): expected ok=false")
	}
}

func TestGetFloatOr(t *testing.T) {
	m := map[string]interface{}{"n": 2.5}
	if v := GetFloatOr(m, "n", 9); v != 2.5 {
		t.Errorf("expected 2.5, got %v", v)
	}
	if v := GetFloatOr(m, "missing", 9); v != 9 {
		t.Errorf("expected default 9, got %v", v)
	}
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{"s": "hi", "n": 1.0}
	if v := GetString(m, "s"); v != "hi" {
		t.Errorf("expected hi, got %q", v)
	}
	if v := GetString(m, "n"); v != "" {
		t.Errorf("expected empty for non-string, got %q", v)
	}
}
