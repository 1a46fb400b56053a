package service

import (
	"errors"
	"sort"
	"strings"
)

// ErrForbidden signals that an authenticated, active user is denied by the
// object-level permission rules. Handlers translate it to 403.
var ErrForbidden = errors.New("insufficient permission")

// ValidationError maps field names to one or more human-readable messages.
// Validators accumulate into it so a single response can report every broken
// rule at once. Handlers translate it to 400.
type ValidationError map[string][]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + strings.Join(e[field], ", "))
	}
	return b.String()
}

// Add appends a message for a field.
func (e ValidationError) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Merge folds another set of violations into this one.
func (e ValidationError) Merge(other ValidationError) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}
