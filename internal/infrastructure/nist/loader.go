package nist

import (
	"fmt"

	"github.com/orlox/medusa/internal/domain/chem"
	"github.com/orlox/medusa/internal/pkg/logger"
)

// isotopeLoader implements chem.IsotopeTableLoader
type isotopeLoader struct {
	logger logger.Logger
}

// NewIsotopeLoader creates a loader that reports what it parsed to logger.
func NewIsotopeLoader(logger logger.Logger) (chem.IsotopeTableLoader, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &isotopeLoader{
		logger: logger,
	}, nil
}

// Load parses the isotope data file at path.
func (l *isotopeLoader) Load(path string) (*chem.IsotopeTable, error) {
	records, err := readFile(path)
	if err != nil {
		return nil, err
	}

	table := chem.NewIsotopeTable(records...)
	if overwritten := len(records) - table.Len(); overwritten > 0 {
		l.logger.Warn(overwritten, " duplicate isotope entries in ", path, " replaced by later ones")
	}
	l.logger.Info("Loaded ", table.Len(), " isotopes from ", path)
	return table, nil
}
