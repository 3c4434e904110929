package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// EnvDataRoot names the environment variable holding the data root directory
const EnvDataRoot = "MEDUSA_PATH"

// EnvIsotopeFile names the environment variable overriding the isotope data file
const EnvIsotopeFile = "MEDUSA_ISOTOPE_FILE"

// DefaultEnvFile is read by LoadDataSettings when no env files are given
const DefaultEnvFile = ".env"

// ChemDataSubdir is the location of chemistry data files below the data root
const ChemDataSubdir = "chem/data"

// DefaultIsotopeFile is the file name of the NIST isotope export inside ChemDataSubdir
const DefaultIsotopeFile = "isotope.data"

// DataSettings locates the data files shared by the chemistry loaders
type DataSettings struct {
	DataRoot    string `yaml:"data_root" validate:"omitempty,dir"`
	IsotopeFile string `yaml:"isotope_file"`
}

// LoadDataSettings reads DataSettings from the environment after loading envFiles,
// and validates them.
func LoadDataSettings(envFiles ...string) (*DataSettings, error) {
	if err := LoadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	settings := DataSettingsFromEnv()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadEnvFiles loads the env files that exist, or DefaultEnvFile when none are given.
// Variables already set in the process environment are never overridden.
func LoadEnvFiles(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	var present []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat env file %s: %w", f, err)
		}
	}
	if len(present) == 0 {
		return nil
	}

	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

// DataSettingsFromEnv reads DataSettings from the process environment without validating them.
func DataSettingsFromEnv() *DataSettings {
	return &DataSettings{
		DataRoot:    os.Getenv(EnvDataRoot),
		IsotopeFile: os.Getenv(EnvIsotopeFile),
	}
}

// Validate checks that DataSettings can locate the isotope data file
func (s *DataSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DataSettings: %w", err)
	}

	if s.DataRoot == "" && !filepath.IsAbs(s.IsotopeFile) {
		return fmt.Errorf("%s must be set unless %s is an absolute path", EnvDataRoot, EnvIsotopeFile)
	}

	return nil
}

// ChemDataDir returns <DataRoot>/chem/data, or "" when no data root is configured.
func (s *DataSettings) ChemDataDir() string {
	if s.DataRoot == "" {
		return ""
	}
	return filepath.Join(s.DataRoot, ChemDataSubdir)
}

// IsotopePath resolves the isotope data file. A relative IsotopeFile is taken
// relative to ChemDataDir.
func (s *DataSettings) IsotopePath() string {
	switch {
	case s.IsotopeFile == "":
		return filepath.Join(s.ChemDataDir(), DefaultIsotopeFile)
	case filepath.IsAbs(s.IsotopeFile):
		return s.IsotopeFile
	default:
		return filepath.Join(s.ChemDataDir(), s.IsotopeFile)
	}
}
