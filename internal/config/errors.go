package config

// InvalidLogLevelError reports a configured log level outside the
// accepted set. Callers match on it to distinguish a bad value from a
// broken config file.
type InvalidLogLevelError struct {
	Level string
}

func (e InvalidLogLevelError) Error() string {
	return "invalid log level: " + e.Level
}
