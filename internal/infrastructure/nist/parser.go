package nist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/orlox/medusa/internal/domain/chem"
)

// Field names recognized in the NIST isotope export. Matching is exact.
const (
	FieldAtomicNumber       = "Atomic Number"
	FieldAtomicSymbol       = "Atomic Symbol"
	FieldMassNumber         = "Mass Number"
	FieldRelativeAtomicMass = "Relative Atomic Mass"
)

const separator = " = "

// maxLineSize bounds a single line of the export.
const maxLineSize = 1 << 20

// Load parses the isotope data file at path.
func Load(path string) (*chem.IsotopeTable, error) {
	records, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return chem.NewIsotopeTable(records...), nil
}

// Parse reads an isotope export from r.
func Parse(r io.Reader) (*chem.IsotopeTable, error) {
	records, err := parseRecords(r)
	if err != nil {
		return nil, err
	}
	return chem.NewIsotopeTable(records...), nil
}

func readFile(path string) ([]chem.IsotopeRecord, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &chem.MissingFileError{Paths: []string{path}}
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open isotope data %s: %w", path, err)
	}
	defer f.Close()

	records, err := parseRecords(f)
	if err != nil {
		var perr *chem.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return records, nil
}

// parseRecords returns the records in file order; duplicates are kept so the
// caller can tell how many entries were overwritten.
func parseRecords(r io.Reader) ([]chem.IsotopeRecord, error) {
	var (
		atomicNumber = -1
		atomicSymbol = ""
		massNumber   = -1
		key          = ""
		records      []chem.IsotopeRecord
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if len(line) <= 1 {
			continue
		}

		field, value := splitLine(line)

		switch field {
		case FieldAtomicNumber:
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, &chem.ParseError{Line: lineNo, Field: field, Err: err}
			}
			atomicNumber = n
		case FieldAtomicSymbol:
			atomicSymbol = strings.ToLower(strings.TrimSpace(value))
		case FieldMassNumber:
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, &chem.ParseError{Line: lineNo, Field: field, Err: err}
			}
			massNumber = n
			key = chem.IsotopeSymbol(atomicNumber, atomicSymbol, massNumber)
		case FieldRelativeAtomicMass:
			mass, err := parseMass(value)
			if err != nil {
				return nil, &chem.ParseError{Line: lineNo, Field: field, Err: err}
			}
			records = append(records, chem.IsotopeRecord{
				Symbol:       key,
				AtomicNumber: atomicNumber,
				MassNumber:   massNumber,
				AtomicMass:   mass,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &chem.ParseError{Line: lineNo + 1, Err: err}
	}

	return records, nil
}

// splitLine returns the text before the first separator and the text after the last one.
// A line without a separator yields the whole line for both.
func splitLine(line string) (field, value string) {
	first := strings.Index(line, separator)
	if first < 0 {
		return line, line
	}
	last := strings.LastIndex(line, separator)
	return line[:first], line[last+len(separator):]
}

// parseMass drops the parenthesized uncertainty, e.g. "1.00782503223(9)".
func parseMass(value string) (float64, error) {
	if i := strings.IndexByte(value, '('); i >= 0 {
		value = value[:i]
	}
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}
