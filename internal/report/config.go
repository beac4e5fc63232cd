package report

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "errchain-report.db"
)

type Config struct {
	DBPath string
}

func DefaultConfig() Config {
	return Config{
		DBPath: defaultDBPath,
	}
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return InvalidPathError{Path: c.DBPath}
	}

	return nil
}
