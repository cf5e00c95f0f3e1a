package placeholder

import (
	"strings"
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestResolve(t *testing.T) {
	created := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	fields := map[string]any{
		"title":     "Weekly Sync",
		"attendees": []any{"Alice", "Bob"},
		"date":      "2024-01-15",
		"count":     3,
		"done":      false,
		"wiki":      "[[projects/website]]",
	}

	tests := []struct {
		name      string
		template  string
		createdAt *time.Time
		want      string
	}{
		{"plain field", "{title}", nil, "Weekly Sync"},
		{"list joined", "{attendees}", nil, "Alice, Bob"},
		{"number", "{count} items", nil, "3 items"},
		{"boolean", "done={done}", nil, "done=false"},
		{"unknown field left literal", "{missing} here", nil, "{missing} here"},
		{"created without timestamp left literal", "{created}", nil, "{created}"},
		{"created default format", "{created}", timePtr(created), "2024-01-15"},
		{"created with pattern", "{created:YYYY-MM-DD hh:mma}", timePtr(created), "2024-01-15 02:30pm"},
		{"date with pattern", "{date:YYYY-MM-DD hh:mma}", nil, "2024-01-15 12:00am"},
		{"date without modifier stays raw", "{date}", nil, "2024-01-15"},
		{"strip unwraps wikilink", "{wiki:strip}", nil, "projectswebsite"},
		{"mixed", "{attendees} O3 - {date:YYYY-MM-DD hh:mma}", nil, "Alice, Bob O3 - 2024-01-15 12:00am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.template, fields, tt.createdAt); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestResolveNonParseableDateFallsBack(t *testing.T) {
	fields := map[string]any{"date": "sometime soon"}
	if got := Resolve("{date:YYYY-MM-DD}", fields, nil); got != "sometime soon" {
		t.Errorf("got %q, want the raw string form", got)
	}
}

func TestResolveNoLiteralBracesWhenAllFieldsPresent(t *testing.T) {
	fields := map[string]any{"a": "x", "b": []any{"y", "z"}}
	got := Resolve("{a}-{b}", fields, nil)
	if strings.ContainsAny(got, "{}") {
		t.Errorf("resolved output contains braces: %q", got)
	}
}

func TestStripDecoration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[[Alice Smith]]", "Alice Smith"},
		{"[x]", "x"},
		{"(x)", "x"},
		{"{x}", "x"},
		{"[[(nested)]]", "nested"},
		{"a/b\\c", "abc"},
		{"@here #tag *bold* _it_ ~st~ `code` |p|", "here tag bold it st code p"},
		{"  spaced   out  ", "spaced out"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripDecoration(tt.in); got != tt.want {
				t.Errorf("StripDecoration(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripModifierOnList(t *testing.T) {
	fields := map[string]any{"people": []any{"[[Alice]]", "[[Bob]]"}}
	if got := Resolve("{people:strip}", fields, nil); got != "Alice, Bob" {
		t.Errorf("got %q, want %q", got, "Alice, Bob")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`Alice, Bob O3 - 2024-01-15`, "Alice, Bob O3 - 2024-01-15"},
		{`bad<name>: "x" /\|?*`, "badname x"},
		{"  collapse    runs  ", "collapse runs"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Areas/Work/O3s/Alice, Bob", "Areas/Work/O3s/Alice, Bob"},
		{"Areas//Work", "Areas/Work"},
		{`Areas/b?d*seg/Ok`, "Areas/bdseg/Ok"},
		{"///", ""},
	}

	for _, tt := range tests {
		if got := SanitizePath(tt.in); got != tt.want {
			t.Errorf("SanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
