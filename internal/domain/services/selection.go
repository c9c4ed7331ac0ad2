package services

import "github.com/biobank-directory/dirview/internal/domain/entities"

// DefaultMaxVisibleOptions is the number of options a filter group shows
// before the list is sliced behind a "Show N more" toggle.
const DefaultMaxVisibleOptions = 4

// Selection helpers. A selection is an ordered list of option ids owned by
// the caller; every helper returns a fresh slice and never mutates its input.

// Contains reports whether id is part of selection.
func Contains(selection []string, id string) bool {
	for _, s := range selection {
		if s == id {
			return true
		}
	}
	return false
}

// Check returns selection with id appended. An id that is already selected
// keeps its position.
func Check(selection []string, id string) []string {
	next := make([]string, 0, len(selection)+1)
	next = append(next, selection...)
	if Contains(selection, id) {
		return next
	}
	return append(next, id)
}

// Uncheck returns selection without any occurrence of id.
func Uncheck(selection []string, id string) []string {
	next := make([]string, 0, len(selection))
	for _, s := range selection {
		if s != id {
			next = append(next, s)
		}
	}
	return next
}

// SetChecked dispatches to Check or Uncheck.
func SetChecked(selection []string, id string, checked bool) []string {
	if checked {
		return Check(selection, id)
	}
	return Uncheck(selection, id)
}

// SelectAll returns every option id in option order. Duplicate ids keep
// their first occurrence.
func SelectAll(options []entities.Option) []string {
	all := entities.OptionIDs(options)
	seen := make(map[string]bool, len(all))
	ids := all[:0]
	for _, id := range all {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ToggleAll returns all option ids when selection is empty and an empty
// selection otherwise. Partial selections count as non-empty.
func ToggleAll(selection []string, options []entities.Option) []string {
	if len(selection) == 0 {
		return SelectAll(options)
	}
	return []string{}
}
