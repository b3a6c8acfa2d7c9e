package renderer

import (
	"strconv"
	"strings"

	"github.com/famomatic/ytscrape/internal/types"
)

// Dig walks a decoded JSON tree. String keys index objects and int keys
// index arrays; any miss returns nil.
func Dig(v any, keys ...any) any {
	cur := v
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[key]
		case int:
			a, ok := cur.([]any)
			if !ok || key < 0 || key >= len(a) {
				return nil
			}
			cur = a[key]
		default:
			return nil
		}
	}
	return cur
}

// DigMap is Dig constrained to an object result.
func DigMap(v any, keys ...any) map[string]any {
	m, _ := Dig(v, keys...).(map[string]any)
	return m
}

// DigSlice is Dig constrained to an array result.
func DigSlice(v any, keys ...any) []any {
	a, _ := Dig(v, keys...).([]any)
	return a
}

// DigString is Dig constrained to a string result.
func DigString(v any, keys ...any) string {
	s, _ := Dig(v, keys...).(string)
	return s
}

// Require is Dig that fails with a *types.FieldError when the path is absent.
func Require(v any, keys ...any) (any, error) {
	cur := v
	for i, k := range keys {
		next := Dig(cur, k)
		if next == nil {
			return nil, &types.FieldError{Path: pathOf(keys[:i+1]), Err: types.ErrMissingField}
		}
		cur = next
	}
	return cur, nil
}

// RequireString is Require constrained to a string result.
func RequireString(v any, keys ...any) (string, error) {
	raw, err := Require(v, keys...)
	if err != nil {
		return "", err
	}
	s, ok := raw.(string)
	if !ok {
		return "", &types.FieldError{Path: pathOf(keys), Err: types.ErrUnexpectedType}
	}
	return s, nil
}

// RequireSlice is Require constrained to an array result.
func RequireSlice(v any, keys ...any) ([]any, error) {
	raw, err := Require(v, keys...)
	if err != nil {
		return nil, err
	}
	a, ok := raw.([]any)
	if !ok {
		return nil, &types.FieldError{Path: pathOf(keys), Err: types.ErrUnexpectedType}
	}
	return a, nil
}

// Truthy follows JavaScript truthiness for decoded JSON values.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// Or returns v when truthy and fallback otherwise.
func Or(v any, fallback any) any {
	if Truthy(v) {
		return v
	}
	return fallback
}

func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(t), ",", ""))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func pathOf(keys []any) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			out = append(out, key)
		case int:
			out = append(out, "["+strconv.Itoa(key)+"]")
		}
	}
	return out
}
