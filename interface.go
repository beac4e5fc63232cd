package errchain

// Error is the minimal contract exposed by containers produced in this
// package. The wrapped cause stays reachable through Unwrap so the
// standard errors.Is / errors.As traversal observes the full chain.
type Error interface {
	error

	// Message returns this layer's own text, without the cause chain.
	Message() string

	Unwrap() error
}
