package pages

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// URLFor returns the path for a declared page, formatting any {param}
// segments with the provided arguments. Arguments are either positional in
// segment order, key-value pairs, or a single map[string]any.
//
//	reg.URLFor(guidePage{}, "slug", "balance-transfer-checklist")
func (reg *Registry) URLFor(page any, args ...any) (string, error) {
	pattern, err := reg.patternFor(page)
	if err != nil {
		return "", err
	}
	path, err := formatPathSegments(pattern, args...)
	if err != nil {
		return "", fmt.Errorf("urlfor: %w", err)
	}
	return strings.Replace(path, "{$}", "", 1), nil
}

func (reg *Registry) patternFor(page any) (string, error) {
	if s, ok := page.(string); ok {
		return s, nil
	}
	want := reflect.TypeOf(page)
	for _, e := range reg.entries {
		if e.page != nil && reflect.TypeOf(e.page) == want {
			return e.Path, nil
		}
	}
	return "", fmt.Errorf("urlfor: no page registered for type %T", page)
}

type segment struct {
	name  string
	param bool
	value string
}

func parseSegments(pattern string) ([]segment, error) {
	var segments []segment
	rest := pattern
	for rest != "" {
		start := strings.Index(rest, "{")
		if start == -1 {
			segments = append(segments, segment{name: rest})
			break
		}
		if start > 0 {
			segments = append(segments, segment{name: rest[:start]})
		}
		rest = rest[start+1:]
		end := strings.Index(rest, "}")
		if end == -1 {
			return nil, fmt.Errorf("pattern %s: unmatched {", pattern)
		}
		name := rest[:end]
		rest = rest[end+1:]
		if name == "$" {
			segments = append(segments, segment{name: "{$}"})
			continue
		}
		name = strings.TrimSuffix(name, "...")
		segments = append(segments, segment{name: name, param: true})
	}
	return segments, nil
}

func formatPathSegments(pattern string, args ...any) (string, error) {
	segments, err := parseSegments(pattern)
	if err != nil {
		return pattern, err
	}
	var indices []int
	for i, seg := range segments {
		if seg.param {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return pattern, nil
	}
	values, err := paramValues(pattern, segments, indices, args)
	if err != nil {
		return pattern, err
	}
	for i, idx := range indices {
		segments[idx].value = values[i]
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(cmp.Or(seg.value, seg.name))
	}
	return b.String(), nil
}

func paramValues(pattern string, segments []segment, indices []int, args []any) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("pattern %s: no arguments provided", pattern)
	}

	byName := func(m map[string]any) ([]string, error) {
		values := make([]string, len(indices))
		for i, idx := range indices {
			name := segments[idx].name
			v, ok := m[name]
			if !ok {
				return nil, fmt.Errorf("pattern %s: argument %s not provided", pattern, name)
			}
			values[i] = fmt.Sprint(v)
		}
		return values, nil
	}

	if m, ok := args[0].(map[string]any); ok && len(args) == 1 {
		return byName(m)
	}

	// key-value pairs, when every even argument is a known parameter name
	if len(args) >= 2 && len(args)%2 == 0 {
		names := make(map[string]bool, len(indices))
		for _, idx := range indices {
			names[segments[idx].name] = true
		}
		pairs := true
		for i := 0; i < len(args); i += 2 {
			key, ok := args[i].(string)
			if !ok || !names[key] {
				pairs = false
				break
			}
		}
		if pairs {
			m := make(map[string]any, len(args)/2)
			for i := 0; i < len(args); i += 2 {
				m[args[i].(string)] = args[i+1]
			}
			return byName(m)
		}
	}

	if len(args) != len(indices) {
		return nil, fmt.Errorf("pattern %s: expected %d arguments, got %d", pattern, len(indices), len(args))
	}
	values := make([]string, len(args))
	for i, arg := range args {
		values[i] = fmt.Sprint(arg)
	}
	return values, nil
}
