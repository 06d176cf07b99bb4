package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soochol/awsblogs/internal/blog"
)

// argsMap accepts a decoded JSON object. A nil input counts as no arguments.
func argsMap(input any) (map[string]any, error) {
	switch v := input.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: expected object, got %T", blog.ErrInvalidInput, input)
	}
}

// stringArg returns args[key] trimmed, or "" when absent or null.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", blog.ErrInvalidInput, key, v)
	}
	return strings.TrimSpace(s), nil
}

func requiredStringArg(args map[string]any, key string) (string, error) {
	s, err := stringArg(args, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", blog.ErrInvalidInput, key)
	}
	return s, nil
}

// intArg returns args[key] as an int, or def when absent or null. JSON
// numbers, json.Number and numeric strings are accepted.
func intArg(args map[string]any, key string, def int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return def, nil
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer, got %q", blog.ErrInvalidInput, key, n.String())
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer, got %q", blog.ErrInvalidInput, key, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", blog.ErrInvalidInput, key, v)
	}

	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", blog.ErrInvalidInput, key, f)
	}
	return int(f), nil
}
