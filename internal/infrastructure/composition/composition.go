package composition

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/orlox/medusa/internal/domain/chem"
	"gopkg.in/yaml.v3"
)

// ResolvePath returns configName when it names an existing file, otherwise
// dataDir/configName when that exists. dataDir may be empty.
func ResolvePath(configName, dataDir string) (string, error) {
	tried := []string{configName}
	if isFile(configName) {
		return configName, nil
	}

	if dataDir != "" {
		candidate := filepath.Join(dataDir, configName)
		tried = append(tried, candidate)
		if isFile(candidate) {
			return candidate, nil
		}
	}

	return "", &chem.MissingFileError{Paths: tried}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Decode reads a YAML composition document. Key presence is recorded separately from
// the decoded maps so that an empty or null mapping still counts as given.
func Decode(r io.Reader) (*chem.CompositionSpec, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &chem.CompositionSpec{}, nil
		}
		return nil, &chem.ParseError{Err: err}
	}

	if len(doc.Content) == 0 {
		return &chem.CompositionSpec{}, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return &chem.CompositionSpec{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &chem.ParseError{Line: root.Line, Err: fmt.Errorf("top level must be a mapping")}
	}

	spec := &chem.CompositionSpec{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var target *map[string]float64
		switch key.Value {
		case chem.KeyAbundances:
			spec.HasAbundances = true
			target = &spec.Abundances
		case chem.KeyMassFractions:
			spec.HasMassFractions = true
			target = &spec.MassFractions
		default:
			continue
		}

		if err := value.Decode(target); err != nil {
			return nil, &chem.ParseError{Line: value.Line, Field: key.Value, Err: err}
		}
	}

	return spec, nil
}

// Normalize converts spec into mass fractions summing to one.
//
// Abundances are on the 12 + log10(nX/nH) scale; each is turned into an unnormalized
// mass fraction 10^A * atomic mass before normalization. The total is fully accumulated
// before any entry is divided, and nothing is returned when a check fails.
func Normalize(spec *chem.CompositionSpec, table *chem.IsotopeTable) (*chem.CompositionResult, error) {
	switch {
	case spec.HasAbundances && spec.HasMassFractions:
		return nil, chem.ConflictingKeysError{}
	case !spec.HasAbundances && !spec.HasMassFractions:
		return nil, chem.MissingKeysError{}
	}

	symbols := spec.Symbols()
	for _, s := range symbols {
		if !table.Contains(s) {
			return nil, &chem.UnknownIsotopeError{Symbol: s}
		}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	massFractions := make(map[string]float64, len(symbols))
	for _, s := range symbols {
		if spec.HasAbundances {
			record, _ := table.Lookup(s)
			massFractions[s] = math.Pow(10, spec.Abundances[s]) * record.AtomicMass
		} else {
			massFractions[s] = spec.MassFractions[s]
		}
	}

	sum := 0.0
	for _, s := range symbols {
		sum += massFractions[s]
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, &chem.InvalidValueError{Value: sum, Reason: "mass fractions must add up to a positive finite total"}
	}

	for _, s := range symbols {
		massFractions[s] /= sum
	}

	result := &chem.CompositionResult{MassFractions: massFractions}
	if spec.HasAbundances {
		result.Abundances = make(map[string]float64, len(spec.Abundances))
		for s, a := range spec.Abundances {
			result.Abundances[s] = a
		}
	}
	return result, nil
}
