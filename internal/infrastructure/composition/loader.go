package composition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orlox/medusa/internal/domain/chem"
	"github.com/orlox/medusa/internal/pkg/logger"
)

// compositionLoader implements chem.CompositionLoader
type compositionLoader struct {
	dataDir string
	logger  logger.Logger
}

// NewCompositionLoader creates a loader that falls back to dataDir for config names
// not found relative to the working directory. dataDir may be empty.
func NewCompositionLoader(dataDir string, logger logger.Logger) (chem.CompositionLoader, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &compositionLoader{
		dataDir: dataDir,
		logger:  logger,
	}, nil
}

// Load resolves configName, decodes it and normalizes it against table.
func (l *compositionLoader) Load(configName string, table *chem.IsotopeTable) (*chem.CompositionResult, error) {
	path, err := ResolvePath(configName, l.dataDir)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Reading composition from ", path)

	spec, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Normalize(spec, table)
	if err != nil {
		return nil, fmt.Errorf("composition %s: %w", path, err)
	}

	l.logger.Info("Loaded composition ", path, " with ", len(result.MassFractions), " species")
	return result, nil
}

func decodeFile(path string) (*chem.CompositionSpec, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open composition %s: %w", path, err)
	}
	defer f.Close()

	spec, err := Decode(f)
	if err != nil {
		var perr *chem.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return spec, nil
}
