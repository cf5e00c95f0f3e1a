// Package prompt renders prompt templates for the local inference
// service and sends them to it.
//
// The template dialect here is deliberately separate from the
// placeholder syntax used for titles and paths: it supports dotted-path
// lookup ({note.title}) and a repeated block construct
// ({#each results as r}...{/each}), neither of which belongs in a
// filename.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	eachBlockRe = regexp.MustCompile(`(?s)\{#each\s+([A-Za-z0-9_.]+)\s+as\s+([A-Za-z0-9_]+)\}(.*?)\{/each\}`)
	pathRe      = regexp.MustCompile(`\{([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)\}`)
)

// Render substitutes dotted-path placeholders and expands each-blocks
// against data. Paths that resolve to nothing are left literal so a bad
// template produces visible output instead of an error.
func Render(template string, data map[string]any) string {
	expanded := eachBlockRe.ReplaceAllStringFunc(template, func(block string) string {
		parts := eachBlockRe.FindStringSubmatch(block)
		listPath, binding, body := parts[1], parts[2], parts[3]

		value, ok := lookup(data, listPath)
		if !ok {
			return block
		}
		items, ok := asList(value)
		if !ok {
			return block
		}

		var b strings.Builder
		for _, item := range items {
			scope := map[string]any{binding: item}
			for k, v := range data {
				if k != binding {
					scope[k] = v
				}
			}
			b.WriteString(substitute(body, scope))
		}
		return b.String()
	})

	return substitute(expanded, data)
}

// substitute replaces every {a.b} path that resolves in data.
func substitute(s string, data map[string]any) string {
	return pathRe.ReplaceAllStringFunc(s, func(match string) string {
		path := match[1 : len(match)-1]
		value, ok := lookup(data, path)
		if !ok {
			return match
		}
		return stringify(value)
	})
}

// lookup walks a dotted path through nested maps.
func lookup(data map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")

	var current any = data
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
