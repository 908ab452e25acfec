package tool

import (
	"encoding/json"
	"fmt"
	"math"
)

// Argument error codes produced by validation.
const (
	ArgCodeMissing  = "MISSING_ARGUMENT"
	ArgCodeMismatch = "TYPE_MISMATCH"
)

// ArgumentError is a structured validation failure naming the offending
// parameter.
type ArgumentError struct {
	Param    string
	Code     string
	Expected ParamType
	Actual   string
}

func (e *ArgumentError) Error() string {
	if e.Code == ArgCodeMissing {
		return fmt.Sprintf("missing required argument '%s'", e.Param)
	}
	return fmt.Sprintf("argument '%s' must be %s, got %s", e.Param, e.Expected, e.Actual)
}

// ValidateArgs checks a raw argument mapping against a parameter spec
// sequence and returns a fully-populated normalized mapping: every declared
// parameter is present, either as the supplied (type-checked) value or as the
// declared default. The input mapping is never mutated, and undeclared keys
// are ignored.
//
// Type checks are strict: a numeric string is not an integer. The only
// accommodation made is for JSON decoding, where integral float64 and
// json.Number values count as integers and are normalized to int.
func ValidateArgs(specs []ParamSpec, args map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(specs))
	for _, spec := range specs {
		raw, ok := args[spec.Name]
		if !ok {
			if spec.Required {
				return nil, &ArgumentError{Param: spec.Name, Code: ArgCodeMissing}
			}
			normalized[spec.Name] = spec.Default
			continue
		}
		value, ok := checkType(spec.Type, raw)
		if !ok {
			return nil, &ArgumentError{
				Param:    spec.Name,
				Code:     ArgCodeMismatch,
				Expected: spec.Type,
				Actual:   valueTypeName(raw),
			}
		}
		normalized[spec.Name] = value
	}
	return normalized, nil
}

func checkType(t ParamType, v any) (any, bool) {
	switch t {
	case TypeString:
		s, ok := v.(string)
		return s, ok
	case TypeBoolean:
		b, ok := v.(bool)
		return b, ok
	case TypeInteger:
		return asInt(v)
	default:
		return nil, false
	}
}

// asInt accepts native ints plus the integral numeric forms produced by
// JSON decoding, normalizing all of them to int.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int(n), true
		}
		return 0, false
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// valueTypeName names a runtime value using JSON vocabulary for error
// messages.
func valueTypeName(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64:
		return "integer"
	case float64:
		if n == math.Trunc(n) {
			return "integer"
		}
		return "number"
	case json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
