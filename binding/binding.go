// Package binding interpolates ${path.to.value} placeholders in
// document metadata strings (titles, creators) from caller-provided
// JSON-like data, so export titles can carry report fields such as a
// project name or a date.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces ${a.b[0].c} placeholders in text with values
// resolved from data (maps and slices as produced by encoding/json).
// Unresolvable placeholders are left verbatim.
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(exprPattern.FindStringSubmatch(match)[1])
		if path == "" {
			return match
		}
		if val, ok := resolve(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func resolve(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

// splitSegment decomposes "name[1][2]" into its name and index parts.
func splitSegment(segment string) (string, []int, bool) {
	name, rest, found := strings.Cut(segment, "[")
	if !found {
		return segment, nil, true
	}
	var indexes []int
	for _, part := range strings.Split(rest, "[") {
		numStr, ok := strings.CutSuffix(part, "]")
		if !ok {
			return "", nil, false
		}
		idx, err := strconv.Atoi(numStr)
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
	}
	return name, indexes, true
}
