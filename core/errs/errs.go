// core/errs/errs.go
package errs

import "fmt"

// SchemaError reports a structural problem with an input table: a required
// column missing or carrying the wrong type. Fatal; aborts the run.
type SchemaError struct {
	Table  string
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema error in %s: column %q: %s", e.Table, e.Column, e.Reason)
	}
	return fmt.Sprintf("schema error in %s: %s", e.Table, e.Reason)
}

// DomainError reports one row violating a value constraint. Such rows are
// excluded and collected in the reject log; the error is never raised
// individually during a run.
type DomainError struct {
	Table  string
	Line   int
	Column string
	Code   string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error in %s:%d column %q [%s]: %s",
		e.Table, e.Line, e.Column, e.Code, e.Reason)
}

// ConfigurationError reports a missing/empty reference or an invalid
// threshold. Fatal; raised before any stage runs.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// ComputationError flags an impossible numeric state, such as a negative
// aggregated count. It means an invariant broke upstream. Fatal.
type ComputationError struct {
	Stage  string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation error in %s: %s", e.Stage, e.Reason)
}
