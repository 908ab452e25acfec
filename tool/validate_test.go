package tool

import (
	"encoding/json"
	"errors"
	"testing"
)

var truncateSpec = []ParamSpec{
	{Name: "text", Type: TypeString, Required: true},
	{Name: "max_length", Type: TypeInteger, Default: 100},
	{Name: "strict", Type: TypeBoolean, Default: false},
}

func TestValidateArgsMissingRequired(t *testing.T) {
	_, err := ValidateArgs(truncateSpec, map[string]any{"max_length": 10})
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error = %v, want ArgumentError", err)
	}
	if argErr.Code != ArgCodeMissing || argErr.Param != "text" {
		t.Fatalf("got code=%q param=%q, want %q/%q", argErr.Code, argErr.Param, ArgCodeMissing, "text")
	}
	if got, want := err.Error(), "missing required argument 'text'"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestValidateArgsAppliesDefaults(t *testing.T) {
	got, err := ValidateArgs(truncateSpec, map[string]any{"text": "hi"})
	if err != nil {
		t.Fatalf("ValidateArgs: %v", err)
	}
	if got["text"] != "hi" {
		t.Fatalf("text = %v, want %q", got["text"], "hi")
	}
	if got["max_length"] != 100 {
		t.Fatalf("max_length = %v, want 100", got["max_length"])
	}
	if got["strict"] != false {
		t.Fatalf("strict = %v, want false", got["strict"])
	}
}

func TestValidateArgsTypeChecks(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantErr bool
	}{
		{"numeric string is not integer", map[string]any{"text": "x", "max_length": "10"}, true},
		{"fractional float is not integer", map[string]any{"text": "x", "max_length": 10.5}, true},
		{"integral float64 is integer", map[string]any{"text": "x", "max_length": float64(10)}, false},
		{"json number is integer", map[string]any{"text": "x", "max_length": json.Number("10")}, false},
		{"native int is integer", map[string]any{"text": "x", "max_length": 10}, false},
		{"bool for string rejected", map[string]any{"text": true}, true},
		{"int for bool rejected", map[string]any{"text": "x", "strict": 1}, true},
		{"bool accepted", map[string]any{"text": "x", "strict": true}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateArgs(truncateSpec, tc.args)
			if tc.wantErr && err == nil {
				t.Fatal("ValidateArgs succeeded, want error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("ValidateArgs: %v", err)
			}
		})
	}
}

func TestValidateArgsMismatchMessage(t *testing.T) {
	_, err := ValidateArgs(truncateSpec, map[string]any{"text": "x", "max_length": "10"})
	if err == nil {
		t.Fatal("ValidateArgs succeeded, want error")
	}
	if got, want := err.Error(), "argument 'max_length' must be integer, got string"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestValidateArgsIgnoresUnknownKeys(t *testing.T) {
	got, err := ValidateArgs(truncateSpec, map[string]any{"text": "x", "future_flag": true})
	if err != nil {
		t.Fatalf("ValidateArgs: %v", err)
	}
	if _, ok := got["future_flag"]; ok {
		t.Fatal("unknown key copied into normalized mapping")
	}
}

func TestValidateArgsDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"text": "x"}
	if _, err := ValidateArgs(truncateSpec, in); err != nil {
		t.Fatalf("ValidateArgs: %v", err)
	}
	if len(in) != 1 {
		t.Fatalf("input mapping mutated: %v", in)
	}
}

func TestValidateArgsIdempotent(t *testing.T) {
	first, err := ValidateArgs(truncateSpec, map[string]any{"text": "x"})
	if err != nil {
		t.Fatalf("first ValidateArgs: %v", err)
	}
	second, err := ValidateArgs(truncateSpec, first)
	if err != nil {
		t.Fatalf("second ValidateArgs: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("normalized sizes differ: %d vs %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Fatalf("key %q changed: %v vs %v", k, v, second[k])
		}
	}
}
