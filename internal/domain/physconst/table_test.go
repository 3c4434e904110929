//go:build unit
// +build unit

package physconst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedConstants(t *testing.T) {
	assert.InEpsilon(t, 1.0545716e-27, HBAR, 1e-6)
	assert.InEpsilon(t, 8.314472e7, CGAS, 1e-6)
	assert.InEpsilon(t, 7.5657e-15, CRAD, 1e-4)
	assert.InEpsilon(t, 0.52917720859e-8, RBOHR, 1e-4)
	assert.InEpsilon(t, 1/137.036, FINE, 1e-4)
	assert.InEpsilon(t, 3.0856e18, PC, 1e-4)
}

func TestLoggSolConsistent(t *testing.T) {
	logg := math.Log10(CGRAV * MSUN / (RSUN * RSUN))
	assert.InDelta(t, LOGGSOL, logg, 1e-9)
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("MSUN")
	require.True(t, ok)
	assert.Equal(t, MSUN, e.Value)
	assert.Contains(t, e.Description, "solar mass")

	e, ok = Lookup("clight")
	require.True(t, ok)
	assert.Equal(t, CLIGHT, e.Value)

	_, ok = Lookup("WARP_FACTOR")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 44)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
}
