//go:build unit
// +build unit

package commands

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/orlox/medusa/internal/domain/chem"
	"github.com/orlox/medusa/internal/domain/physconst"
	"github.com/orlox/medusa/internal/pkg/config"
	"github.com/orlox/medusa/internal/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvDataRoot, "")
	t.Setenv(config.EnvIsotopeFile, "")

	rootCmd := &cobra.Command{Use: "medusa-chem-cli", SilenceUsage: true, SilenceErrors: true}
	InitGlobalFlags(rootCmd)
	require.NoError(t, InitIsotopeCommands(rootCmd))
	require.NoError(t, InitCompositionCommands(rootCmd))
	require.NoError(t, InitConstantsCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)

	noEnv := filepath.Join(t.TempDir(), "absent.env")
	rootCmd.SetArgs(append([]string{"--env-file", noEnv, "--log-level", config.LogLevelError}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestIsotopesCommand(t *testing.T) {
	root := testutil.SetupDataRoot(t)

	t.Run("TextListing", func(t *testing.T) {
		out, err := executeCommand(t, "--data-root", root, "isotopes")
		require.NoError(t, err)
		assert.Contains(t, out, "SYMBOL")
		assert.Contains(t, out, "h2")
		assert.Contains(t, out, "2.01410177812")
		assert.Contains(t, out, "he4")
		assert.Contains(t, out, "o16")
	})

	t.Run("YAMLSelection", func(t *testing.T) {
		out, err := executeCommand(t, "--data-root", root, "-o", "yaml", "isotopes", "h2", "c12")
		require.NoError(t, err)

		var records []chem.IsotopeRecord
		require.NoError(t, yaml.Unmarshal([]byte(out), &records))
		require.Len(t, records, 2)
		assert.Equal(t, chem.IsotopeRecord{Symbol: "h2", AtomicNumber: 1, MassNumber: 2, AtomicMass: 2.01410177812}, records[0])
		assert.Equal(t, "c12", records[1].Symbol)
	})

	t.Run("ExplicitIsotopeFile", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "nist.txt", testutil.IsotopeBlock(26, "Fe", 56, "55.93493633(49)"))

		out, err := executeCommand(t, "--isotope-file", path, "isotopes")
		require.NoError(t, err)
		assert.Contains(t, out, "fe56")
		assert.NotContains(t, out, "he4")
	})

	t.Run("UnknownSymbol", func(t *testing.T) {
		_, err := executeCommand(t, "--data-root", root, "isotopes", "d2")
		assert.True(t, errors.Is(err, chem.ErrUnknownIsotope))
	})

	t.Run("MissingIsotopeFile", func(t *testing.T) {
		_, err := executeCommand(t, "--data-root", t.TempDir(), "isotopes")
		assert.True(t, errors.Is(err, chem.ErrMissingFile))
	})

	t.Run("NoDataRoot", func(t *testing.T) {
		_, err := executeCommand(t, "isotopes")
		assert.Error(t, err)
	})
}

func TestCompositionCommand(t *testing.T) {
	root := testutil.SetupDataRoot(t)
	testutil.WriteFile(t, filepath.Join(root, config.ChemDataSubdir), "solar.yml", "abundances:\n  h1: 12.0\n  he4: 10.93\n  c12: 8.43\n  o16: 8.69\n")

	t.Run("YAMLFromDataDir", func(t *testing.T) {
		out, err := executeCommand(t, "--data-root", root, "-o", "yaml", "composition", "solar.yml")
		require.NoError(t, err)

		var result chem.CompositionResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &result))
		assert.Equal(t, 12.0, result.Abundances["h1"])
		require.Len(t, result.MassFractions, 4)

		total := 0.0
		for _, v := range result.MassFractions {
			total += v
		}
		assert.InDelta(t, 1.0, total, 1e-9)
	})

	t.Run("TextMassFractions", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "primordial.yml", "mass_fractions:\n  h1: 3\n  he4: 1\n")

		out, err := executeCommand(t, "--data-root", root, "composition", path)
		require.NoError(t, err)
		assert.Contains(t, out, "MASS FRACTION")
		assert.NotContains(t, out, "ABUNDANCE")
		assert.Contains(t, out, "7.5000000000e-01")
		assert.Contains(t, out, "2.5000000000e-01")
	})

	t.Run("ConflictingKeys", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "both.yml", "abundances: {h1: 12}\nmass_fractions: {h1: 1}\n")

		_, err := executeCommand(t, "--data-root", root, "composition", path)
		assert.True(t, errors.Is(err, chem.ErrConflictingKeys))
	})

	t.Run("MissingConfig", func(t *testing.T) {
		_, err := executeCommand(t, "--data-root", root, "composition", "absent.yml")
		assert.True(t, errors.Is(err, chem.ErrMissingFile))
	})

	t.Run("RequiresArgument", func(t *testing.T) {
		_, err := executeCommand(t, "--data-root", root, "composition")
		assert.Error(t, err)
	})

	t.Run("BadOutputFormat", func(t *testing.T) {
		_, err := executeCommand(t, "--data-root", root, "-o", "json", "composition", "solar.yml")
		assert.Error(t, err)
	})
}

func TestConstantsCommand(t *testing.T) {
	t.Run("Selection", func(t *testing.T) {
		out, err := executeCommand(t, "constants", "msun", "CLIGHT")
		require.NoError(t, err)
		assert.Contains(t, out, "MSUN")
		assert.Contains(t, out, "1.9892e+33")
		assert.Contains(t, out, "CLIGHT")
		assert.NotContains(t, out, "RSUN")
	})

	t.Run("YAMLAll", func(t *testing.T) {
		out, err := executeCommand(t, "-o", "yaml", "constants")
		require.NoError(t, err)

		var entries []physconst.Entry
		require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
		assert.Len(t, entries, len(physconst.All()))
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := executeCommand(t, "constants", "WARP")
		assert.Error(t, err)
	})
}
