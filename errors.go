package findash

import "fmt"

// The error taxonomy below is shared by the whole core. Mutations reject
// invalid requests without applying any partial state; aggregations fail fast
// instead of emitting NaN or silently wrong numbers. All messages are meant
// to be shown to the user as-is.

// ValidationError reports a rejected mutation: an invariant such as name
// uniqueness or sign convention would have been violated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// validationf builds a ValidationError from a format string.
func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a reference to an id that does not exist at mutation
// time.
type NotFoundError struct {
	Kind string // entity kind, e.g. "category", "transaction"
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.ID) }

// UpstreamError reports a collaborator (store, market data, language model)
// that failed or returned malformed data.
type UpstreamError struct {
	Source string // collaborator name, e.g. "store", "coingecko"
	Err    error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Source, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

// EmptyInputError reports an operation that requires at least one record
// (CSV export, trade analysis) but received none.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s requires at least one record", e.Op)
}
