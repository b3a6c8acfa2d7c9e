package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"
)

// evalTimeout bounds a single goja evaluation of a page literal.
const evalTimeout = 2 * time.Second

var errEmptyLiteral = errors.New("empty literal")

// Literal decodes an object or array literal taken from an inline script.
// Strict JSON is tried first, then the balanced prefix of s (dropping
// trailing statements), then a JS evaluation for non-strict literals such
// as single quotes, unquoted keys or trailing commas.
func Literal(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyLiteral
	}

	var out any
	err := json.Unmarshal([]byte(s), &out)
	if err == nil {
		return out, nil
	}

	if obj := balanced(s); obj != "" && obj != s {
		if jsonErr := json.Unmarshal([]byte(obj), &out); jsonErr == nil {
			return out, nil
		}
		s = obj
	}

	out, evalErr := evalLiteral(s)
	if evalErr != nil {
		return nil, fmt.Errorf("decode literal: %w (js: %v)", err, evalErr)
	}
	return out, nil
}

// evalLiteral runs the literal through JSON.stringify in a fresh runtime and
// decodes the result, so numbers come back as float64 like encoding/json.
func evalLiteral(literal string) (any, error) {
	vm := goja.New()
	timer := time.AfterFunc(evalTimeout, func() {
		vm.Interrupt("literal evaluation timed out")
	})
	defer timer.Stop()

	v, err := vm.RunString("JSON.stringify((" + literal + "\n))")
	if err != nil {
		return nil, err
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, errEmptyLiteral
	}
	var out any
	if err := json.Unmarshal([]byte(v.String()), &out); err != nil {
		return nil, err
	}
	return out, nil
}
