package configs

//go:generate mockgen -source=source.go -destination=./mocks/source_mock.go -package=mocks

// Source yields the configuration current at the moment of the call.
type Source interface {
	Snapshot() (*Config, error)
}

type fileSource struct {
	path      string
	overrides Overrides
}

// NewFileSource returns a Source that re-reads the config file on every
// Snapshot call, so file edits take effect on the next polling cycle
// without a restart. Command-line overrides keep precedence across reloads.
func NewFileSource(path string, overrides Overrides) Source {
	return &fileSource{path: path, overrides: overrides}
}

func (s *fileSource) Snapshot() (*Config, error) {
	return LoadConfig(s.path, s.overrides)
}
