package rules

import "sort"

// Evaluation is the result of running a document's metadata through an
// ordered list of rulesets. Computed fresh on every call; never persisted.
type Evaluation struct {
	// Ruleset is the first ruleset whose match conditions held, or nil.
	// It is populated even when Matches is false because a trigger field
	// went empty after matching, so callers can distinguish "no ruleset
	// applies" from "a ruleset applies but its trigger is invalid".
	Ruleset *Ruleset

	// Matches reports whether Ruleset applies with valid trigger fields.
	Matches bool

	// Missing lists unsatisfied field names: trigger fields when Matches
	// is false but Ruleset is set, required fields otherwise. Ordered by
	// declaration.
	Missing []string

	// Complete is true when Matches holds and no required field is empty.
	Complete bool
}

// NoMatch is the result for a document no ruleset applies to.
func NoMatch() Evaluation {
	return Evaluation{}
}

// Evaluate scans rulesets in declared order and returns the evaluation of
// the first whose match conditions all hold. Neither metadata nor
// rulesets are mutated; calling twice with identical inputs yields
// structurally identical results.
func Evaluate(metadata map[string]any, rulesets []Ruleset) Evaluation {
	if metadata == nil {
		return NoMatch()
	}

	for i := range rulesets {
		rs := &rulesets[i]
		if !conditionsHold(metadata, rs.Match) {
			continue
		}
		return evaluateMatched(metadata, rs)
	}

	return NoMatch()
}

func conditionsHold(metadata map[string]any, match map[string]any) bool {
	for name, expected := range match {
		actual, ok := metadata[name]
		if !ok || !valueEquals(actual, expected) {
			return false
		}
	}
	return true
}

// valueEquals is strict equality over JSON-like scalars: both sides must
// be the same kind of value. Numeric values compare by magnitude across
// int/float representations (YAML decodes 3 and 3.0 differently), but a
// number never equals its string form.
func valueEquals(a, b any) bool {
	if af, aok := numericValue(a); aok {
		bf, bok := numericValue(b)
		return bok && af == bf
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func evaluateMatched(metadata map[string]any, rs *Ruleset) Evaluation {
	// The match held a moment ago, but the user may since have blanked
	// the very field that caused it. Re-check the trigger fields with the
	// same emptiness rule required fields use; report them as the missing
	// set so callers can show "invalid trigger" feedback distinct from
	// "missing required field".
	if invalid := emptyTriggerFields(metadata, rs); len(invalid) > 0 {
		return Evaluation{Ruleset: rs, Matches: false, Missing: invalid}
	}

	var missing []string
	for _, f := range rs.Fields {
		if f.Required && IsEmpty(metadata[f.Name], f.Type) {
			missing = append(missing, f.Name)
		}
	}

	return Evaluation{
		Ruleset:  rs,
		Matches:  true,
		Missing:  missing,
		Complete: len(missing) == 0,
	}
}

func emptyTriggerFields(metadata map[string]any, rs *Ruleset) []string {
	var invalid []string
	for _, name := range orderedMatchNames(rs.Match) {
		t := triggerValueType(rs.Match[name])
		if decl, ok := rs.FieldNamed(name); ok {
			t = decl.Type
		}
		if IsEmpty(metadata[name], t) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

// triggerValueType infers the emptiness type for an undeclared trigger
// field from the value the ruleset matches on. A boolean or numeric
// trigger must not be revalidated under the text rule, which would
// reject the very value the equality check just accepted.
func triggerValueType(expected any) FieldType {
	if _, ok := expected.(bool); ok {
		return FieldTypeBoolean
	}
	if _, ok := numericValue(expected); ok {
		return FieldTypeNumber
	}
	return FieldTypeText
}

// orderedMatchNames returns trigger field names in a stable order so
// repeated evaluations report identical missing sets.
func orderedMatchNames(match map[string]any) []string {
	names := make([]string, 0, len(match))
	for name := range match {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
