package endpoint

// Taxonomy of descriptor failures callers branch on. Failures that are
// purely diagnostic travel as ad-hoc messages instead of growing this
// set.

// FieldMissingError reports a descriptor field that was absent. Two
// values naming the same field describe the same failure.
type FieldMissingError struct {
	Field string
}

func (e FieldMissingError) Error() string {
	return "Missing field: " + e.Field
}
