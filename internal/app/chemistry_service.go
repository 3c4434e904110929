package app

import (
	"fmt"

	"github.com/orlox/medusa/internal/domain/chem"
	"github.com/orlox/medusa/internal/pkg/logger"
)

// ChemistryService owns the isotope table of a process. The table is loaded once in
// NewChemistryService and only read afterwards, so the service may be shared between
// goroutines.
type ChemistryService struct {
	table        *chem.IsotopeTable
	compositions chem.CompositionLoader
	logger       logger.Logger
}

// NewChemistryService loads the isotope table from isotopePath and wires the composition loader.
func NewChemistryService(
	isotopePath string,
	isotopes chem.IsotopeTableLoader,
	compositions chem.CompositionLoader,
	logger logger.Logger,
) (*ChemistryService, error) {
	table, err := isotopes.Load(isotopePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load isotope table: %w", err)
	}

	return &ChemistryService{
		table:        table,
		compositions: compositions,
		logger:       logger,
	}, nil
}

// IsotopeTable returns the shared isotope table.
func (s *ChemistryService) IsotopeTable() *chem.IsotopeTable {
	return s.table
}

// Isotopes returns the records for symbols in the given order, or every record
// ordered by atomic and mass number when no symbols are given.
func (s *ChemistryService) Isotopes(symbols ...string) ([]chem.IsotopeRecord, error) {
	if len(symbols) == 0 {
		return s.table.Records(), nil
	}

	records := make([]chem.IsotopeRecord, 0, len(symbols))
	for _, symbol := range symbols {
		r, ok := s.table.Lookup(symbol)
		if !ok {
			return nil, &chem.UnknownIsotopeError{Symbol: symbol}
		}
		records = append(records, r)
	}
	return records, nil
}

// LoadComposition loads and normalizes the configuration named configName.
func (s *ChemistryService) LoadComposition(configName string) (*chem.CompositionResult, error) {
	result, err := s.compositions.Load(configName, s.table)
	if err != nil {
		s.logger.Error("Failed to load composition ", configName, ": ", err)
		return nil, err
	}
	return result, nil
}
