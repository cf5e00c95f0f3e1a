package prompt

import "testing"

func TestRenderDottedPaths(t *testing.T) {
	data := map[string]any{
		"note": map[string]any{
			"title": "Weekly Sync",
			"meta":  map[string]any{"owner": "Alice"},
		},
		"query": "project updates",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"top level", "Search: {query}", "Search: project updates"},
		{"nested", "Title: {note.title}", "Title: Weekly Sync"},
		{"deeply nested", "Owner: {note.meta.owner}", "Owner: Alice"},
		{"unknown stays literal", "{note.missing} and {nope}", "{note.missing} and {nope}"},
		{"path through scalar stays literal", "{query.deeper}", "{query.deeper}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, data); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestRenderEachBlock(t *testing.T) {
	data := map[string]any{
		"results": []any{
			map[string]any{"title": "One", "path": "a.md"},
			map[string]any{"title": "Two", "path": "b.md"},
		},
	}

	got := Render("{#each results as r}- {r.title} ({r.path})\n{/each}", data)
	want := "- One (a.md)\n- Two (b.md)\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderEachBlockScalarElements(t *testing.T) {
	data := map[string]any{"names": []string{"Alice", "Bob"}}

	got := Render("{#each names as n}{n}, {/each}", data)
	if got != "Alice, Bob, " {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderEachBlockSeesOuterScope(t *testing.T) {
	data := map[string]any{
		"query": "sync",
		"hits":  []any{map[string]any{"title": "One"}},
	}

	got := Render("{#each hits as h}{query}: {h.title}{/each}", data)
	if got != "sync: One" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderEachBlockMissingList(t *testing.T) {
	got := Render("{#each nothing as x}{x}{/each}", map[string]any{})
	if got != "{#each nothing as x}{x}{/each}" {
		t.Errorf("missing list should leave block literal, got %q", got)
	}
}

func TestRenderEachBlockNonList(t *testing.T) {
	got := Render("{#each q as x}{x}{/each}", map[string]any{"q": "scalar"})
	if got != "{#each q as x}{x}{/each}" {
		t.Errorf("non-list should leave block literal, got %q", got)
	}
}

func TestRenderEmptyList(t *testing.T) {
	got := Render("before {#each xs as x}{x}{/each} after", map[string]any{"xs": []any{}})
	if got != "before  after" {
		t.Errorf("empty list should expand to nothing, got %q", got)
	}
}
