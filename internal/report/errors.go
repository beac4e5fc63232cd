package report

// InvalidPathError reports a report database path that cannot be used.
// Callers match on it to fall back to log-only operation instead of
// aborting.
type InvalidPathError struct {
	Path string
}

func (e InvalidPathError) Error() string {
	if e.Path == "" {
		return "report database path is empty"
	}

	return "invalid report database path: " + e.Path
}
