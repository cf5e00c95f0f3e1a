// Package rules handles ruleset loading, matching, and completeness
// evaluation for document metadata.
package rules

// FieldType is the closed set of value types a declared field can hold.
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeList    FieldType = "list"
	FieldTypeDate    FieldType = "date"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// KnownType reports whether t is one of the declared field types.
// Unknown types are tolerated at load time and treated as never-empty
// during evaluation so a bad declaration cannot break unrelated documents.
func KnownType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeList, FieldTypeDate, FieldTypeNumber, FieldTypeBoolean:
		return true
	}
	return false
}

// FieldDeclaration declares one required-or-optional metadata field of a
// ruleset. Immutable once evaluated against a document.
type FieldDeclaration struct {
	Name     string    `yaml:"name"`
	Type     FieldType `yaml:"type"`
	Format   string    `yaml:"format,omitempty"` // date-format pattern for date fields
	Required bool      `yaml:"required,omitempty"`
}

// RenamePolicy controls when organizing rewrites the document title.
type RenamePolicy string

const (
	RenameNever   RenamePolicy = "never"
	RenameIfUnset RenamePolicy = "if-unset"
	RenameAlways  RenamePolicy = "always"
)

// Ruleset is a named bundle of a trigger condition, a required-field
// schema, and output templates. Rulesets are read-only to the engine; an
// ordered sequence is evaluated top to bottom and the first whose match
// conditions all hold wins.
type Ruleset struct {
	Name string `yaml:"name"`

	// Match maps field names to the exact metadata value required for
	// this ruleset to apply. Equality is strict: no partial matching, no
	// cross-type coercion. An empty map matches every document, so
	// declaration order is the only safeguard against universal matches.
	Match map[string]any `yaml:"match"`

	// Fields is the ordered required-field schema.
	Fields []FieldDeclaration `yaml:"fields,omitempty"`

	TitleTemplate string       `yaml:"title_template,omitempty"`
	PathTemplate  string       `yaml:"path_template,omitempty"`
	Rename        RenamePolicy `yaml:"rename,omitempty"`
	AutoMove      bool         `yaml:"auto_move,omitempty"`

	// Flags is an opaque bag reserved for behavior toggles
	// (e.g. slug_filenames).
	Flags map[string]bool `yaml:"flags,omitempty"`
}

// FieldNamed returns the declaration for name, if the ruleset has one.
func (r *Ruleset) FieldNamed(name string) (FieldDeclaration, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDeclaration{}, false
}

// Flag returns the value of a behavior flag, defaulting to false.
func (r *Ruleset) Flag(name string) bool {
	if r.Flags == nil {
		return false
	}
	return r.Flags[name]
}
