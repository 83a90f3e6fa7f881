// Package trackererror defines the typed errors used across the expense tracker.
package trackererror

import "fmt"

// InvalidCategoryError indicates that a category name is not part of the
// known category set.
type InvalidCategoryError struct {
	Category string
	Known    []string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category '%s': choose one of %v", e.Category, e.Known)
}

// InvalidAmountError indicates that an amount could not be parsed as a
// positive decimal number.
type InvalidAmountError struct {
	Value  string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount '%s': %s", e.Value, e.Reason)
}

// PersistenceError wraps an I/O failure on load or save. It is recoverable:
// the in-memory ledger remains usable even when the last save failed.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
