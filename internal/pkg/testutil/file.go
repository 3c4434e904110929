package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// IsotopeBlock renders one isotope in the NIST export layout.
func IsotopeBlock(atomicNumber int, symbol string, massNumber int, relativeMass string) string {
	return fmt.Sprintf("Atomic Number = %d\nAtomic Symbol = %s\nMass Number = %d\nRelative Atomic Mass = %s\nIsotopic Composition = \nStandard Atomic Weight = \nNotes = \n\n",
		atomicNumber, symbol, massNumber, relativeMass)
}

// SampleIsotopeData is a small NIST export covering hydrogen, helium, carbon and oxygen.
var SampleIsotopeData = IsotopeBlock(1, "H", 1, "1.00782503223(9)") +
	IsotopeBlock(1, "D", 2, "2.01410177812(12)") +
	IsotopeBlock(1, "T", 3, "3.0160492779(24)") +
	IsotopeBlock(2, "He", 3, "3.0160293201(25)") +
	IsotopeBlock(2, "He", 4, "4.00260325413(6)") +
	IsotopeBlock(6, "C", 12, "12.0000000(00)") +
	IsotopeBlock(6, "C", 13, "13.00335483507(23)") +
	IsotopeBlock(8, "O", 16, "15.99491461957(17)")

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// WriteFile writes content to dir/name, creating parent directories, and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, CreateTestFile(path, []byte(content)))
	return path
}

// SetupDataRoot creates a data root with chem/data/isotope.data holding SampleIsotopeData.
func SetupDataRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	WriteFile(t, root, filepath.Join("chem", "data", "isotope.data"), SampleIsotopeData)
	return root
}
