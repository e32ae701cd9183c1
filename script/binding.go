package script

import (
	"fmt"
	"strconv"
	"strings"
)

// resolveSeries resolves a ${path} reference against the bound document and
// coerces the value to a numeric vector. Paths use dot and index notation,
// eg "runs[0].values".
func resolveSeries(data any, path string) ([]float64, error) {
	if data == nil {
		return nil, fmt.Errorf("reference ${%s}: no data document bound", path)
	}
	val, ok := resolvePath(data, path)
	if !ok {
		return nil, fmt.Errorf("reference ${%s}: path not found", path)
	}
	list, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("reference ${%s}: value is not an array", path)
	}
	out := make([]float64, len(list))
	for i, item := range list {
		num, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("reference ${%s}: element %d is not a number", path, i)
		}
		out[i] = num
	}
	return out, nil
}

func resolvePath(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes := parseSegment(segment)
		if name != "" {
			var ok bool
			current, ok = descendMap(current, name)
			if !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			var ok bool
			current, ok = descendArray(current, idx)
			if !ok {
				return nil, false
			}
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []string) {
	name := segment
	indexes := []string{}
	if i := strings.Index(segment, "["); i != -1 {
		name = segment[:i]
		rest := segment[i:]
		for len(rest) > 0 {
			if rest[0] != '[' {
				break
			}
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				break
			}
			indexes = append(indexes, rest[1:end])
			rest = rest[end+1:]
		}
	}
	return name, indexes
}

func descendMap(current any, key string) (any, bool) {
	switch c := current.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	default:
		return nil, false
	}
}

func descendArray(current any, idx int) (any, bool) {
	switch c := current.(type) {
	case []any:
		if idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	default:
		return nil, false
	}
}
