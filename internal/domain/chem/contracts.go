package chem

// IsotopeTableLoader builds an IsotopeTable from an isotope data file.
type IsotopeTableLoader interface {
	// Load parses the file at path and returns the resulting table.
	// It returns a *MissingFileError if path does not reference an existing file.
	Load(path string) (*IsotopeTable, error)
}

// CompositionLoader reads a composition configuration and normalizes it against an IsotopeTable.
type CompositionLoader interface {
	// Load resolves configName, parses it and returns normalized mass fractions.
	// No result is returned when an error occurs.
	Load(configName string, table *IsotopeTable) (*CompositionResult, error)
}
