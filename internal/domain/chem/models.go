package chem

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/orlox/medusa/internal/pkg/validators"
)

// IsotopeRecord holds the data of a single isotope as read from the NIST export.
type IsotopeRecord struct {
	Symbol       string  `yaml:"symbol"`
	AtomicNumber int     `yaml:"atomic_number"`
	MassNumber   int     `yaml:"mass_number"`
	AtomicMass   float64 `yaml:"atomic_mass"`
}

// IsotopeSymbol builds the table key of an isotope: the lower-case element letters
// followed by the mass number. Hydrogen isotopes always use the letters "h".
func IsotopeSymbol(atomicNumber int, elementSymbol string, massNumber int) string {
	if atomicNumber == 1 {
		elementSymbol = HydrogenSymbol
	}
	return fmt.Sprintf("%s%d", elementSymbol, massNumber)
}

// IsotopeTable is a read-only mapping from isotope symbol to IsotopeRecord.
// It is built once and never modified afterwards, so it may be shared freely.
type IsotopeTable struct {
	records map[string]IsotopeRecord
}

// NewIsotopeTable creates a table from records. When two records share a symbol
// the later one wins.
func NewIsotopeTable(records ...IsotopeRecord) *IsotopeTable {
	t := &IsotopeTable{records: make(map[string]IsotopeRecord, len(records))}
	for _, r := range records {
		t.records[r.Symbol] = r
	}
	return t
}

// Lookup returns the record stored under symbol.
func (t *IsotopeTable) Lookup(symbol string) (IsotopeRecord, bool) {
	if t == nil {
		return IsotopeRecord{}, false
	}
	r, ok := t.records[symbol]
	return r, ok
}

// Contains reports whether symbol is a key of the table.
func (t *IsotopeTable) Contains(symbol string) bool {
	_, ok := t.Lookup(symbol)
	return ok
}

// Len returns the number of isotopes in the table.
func (t *IsotopeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Symbols returns all keys in lexical order.
func (t *IsotopeTable) Symbols() []string {
	if t == nil {
		return nil
	}
	symbols := make([]string, 0, len(t.records))
	for s := range t.records {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Records returns a copy of every record ordered by atomic number, then mass number.
func (t *IsotopeTable) Records() []IsotopeRecord {
	if t == nil {
		return nil
	}
	out := make([]IsotopeRecord, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AtomicNumber != out[j].AtomicNumber {
			return out[i].AtomicNumber < out[j].AtomicNumber
		}
		if out[i].MassNumber != out[j].MassNumber {
			return out[i].MassNumber < out[j].MassNumber
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// CompositionSpec is the decoded chemistry configuration. Exactly one of the two
// mappings is expected to be present; HasAbundances and HasMassFractions record key
// presence in the source document, since an empty mapping still counts as given.
type CompositionSpec struct {
	Abundances    map[string]float64 `yaml:"abundances" validate:"omitempty,dive,finite"`
	MassFractions map[string]float64 `yaml:"mass_fractions" validate:"omitempty,dive,finite,gte=0"`

	HasAbundances    bool `yaml:"-"`
	HasMassFractions bool `yaml:"-"`
}

// Symbols returns the keys of whichever mapping is present, in lexical order.
func (s *CompositionSpec) Symbols() []string {
	src := s.MassFractions
	if s.HasAbundances {
		src = s.Abundances
	}
	return sortedKeys(src)
}

// Validate checks the numeric values of the spec. Abundances must be finite and
// mass fractions must be finite and non-negative.
func (s *CompositionSpec) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation(validators.FiniteTag, validators.Finite); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("validation error: %w", err)
	}

	// map iteration order is random, pick the lexically first failure
	sort.Slice(validationErrors, func(i, j int) bool {
		return validationErrors[i].Field() < validationErrors[j].Field()
	})
	fieldErr := validationErrors[0]
	value, _ := fieldErr.Value().(float64)
	return &InvalidValueError{
		Symbol: mapKeyOf(fieldErr.Field()),
		Value:  value,
		Reason: reasonFor(fieldErr.Tag()),
	}
}

// CompositionResult is the normalized composition. MassFractions always sums to one.
// Abundances is only set when the configuration was given as abundances.
type CompositionResult struct {
	Abundances    map[string]float64 `yaml:"abundances,omitempty"`
	MassFractions map[string]float64 `yaml:"mass_fractions"`
}

// Symbols returns the mass fraction keys in lexical order.
func (r *CompositionResult) Symbols() []string {
	return sortedKeys(r.MassFractions)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mapKeyOf extracts "h1" from a validator field name such as "MassFractions[h1]".
func mapKeyOf(field string) string {
	start := strings.IndexByte(field, '[')
	end := strings.LastIndexByte(field, ']')
	if start < 0 || end <= start {
		return field
	}
	return field[start+1 : end]
}

func reasonFor(tag string) string {
	switch tag {
	case validators.FiniteTag:
		return "value must be a finite number"
	case "gte":
		return "mass fraction must not be negative"
	default:
		return "failed " + tag + " check"
	}
}
