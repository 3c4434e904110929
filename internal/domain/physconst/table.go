package physconst

import (
	"sort"
	"strings"
)

// Entry is one named constant with a short description of its meaning and unit.
type Entry struct {
	Name        string  `yaml:"name"`
	Value       float64 `yaml:"value"`
	Description string  `yaml:"description"`
}

var entries = map[string]Entry{}

func register(name string, value float64, description string) {
	entries[name] = Entry{Name: name, Value: value, Description: description}
}

func init() {
	register("PI", PI, "pi")
	register("EULERCON", EULERCON, "Euler's number e")
	register("CGRAV", CGRAV, "gravitational constant (g^-1 cm^3 s^-2)")
	register("PLANCK_H", PLANCK_H, "Planck's constant (erg s)")
	register("HBAR", HBAR, "reduced Planck's constant (erg s)")
	register("QE", QE, "electron charge (esu)")
	register("AVO", AVO, "Avogadro's constant (mole^-1)")
	register("CLIGHT", CLIGHT, "speed of light in vacuum (cm s^-1)")
	register("KERG", KERG, "Boltzmann's constant (erg K^-1)")
	register("CGAS", CGAS, "ideal gas constant (erg K^-1 mole^-1)")
	register("KEV", KEV, "temperature to eV (eV K^-1)")
	register("AMU", AMU, "atomic mass unit (g)")
	register("MN", MN, "neutron mass (g)")
	register("MP", MP, "proton mass (g)")
	register("ME", ME, "electron mass (g)")
	register("RBOHR", RBOHR, "Bohr radius (cm)")
	register("FINE", FINE, "fine structure constant")
	register("HION", HION, "hydrogen ionization energy (eV)")
	register("EV2ERG", EV2ERG, "electron volt (erg)")
	register("MEV_TO_ERGS", MEV_TO_ERGS, "MeV (erg)")
	register("MEV_AMU", MEV_AMU, "MeV per atomic mass unit (erg g^-1)")
	register("QCONV", QCONV, "MeV per mole (erg mole^-1)")
	register("BOLTZ_SIGMA", BOLTZ_SIGMA, "Stefan-Boltzmann constant (erg cm^-2 K^-4 s^-1)")
	register("CRAD", CRAD, "radiation density constant (erg cm^-3 K^-4)")
	register("WEINLAM", WEINLAM, "Wien wavelength displacement constant (cm K)")
	register("WEINFRE", WEINFRE, "Wien frequency displacement constant (Hz K^-1)")
	register("RHONUC", RHONUC, "density of nucleus (g cm^-3)")
	register("MSUN", MSUN, "solar mass (g)")
	register("RSUN", RSUN, "solar radius (cm)")
	register("LSUN", LSUN, "solar luminosity (erg s^-1)")
	register("AGESUN", AGESUN, "solar age (years)")
	register("LY", LY, "light year (cm)")
	register("PC", PC, "parsec (cm)")
	register("SECYER", SECYER, "seconds per year")
	register("DAYYER", DAYYER, "days per year")
	register("TEFFSOL", TEFFSOL, "solar effective temperature (K)")
	register("LOGGSOL", LOGGSOL, "solar log surface gravity (cgs)")
	register("MBOLSUN", MBOLSUN, "solar bolometric magnitude")
	register("M_EARTH", M_EARTH, "earth mass (g)")
	register("R_EARTH", R_EARTH, "earth radius (cm)")
	register("AU", AU, "astronomical unit (cm)")
	register("M_JUPITER", M_JUPITER, "jupiter mass (g)")
	register("R_JUPITER", R_JUPITER, "jupiter mean radius (cm)")
	register("SEMIMAJOR_AXIS_JUPITER", SEMIMAJOR_AXIS_JUPITER, "jupiter semimajor axis (cm)")
}

// Lookup returns the constant called name. Names are matched case-insensitively.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[strings.ToUpper(name)]
	return e, ok
}

// All returns every constant sorted by name.
func All() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
