package chem

// KeyAbundances is the configuration key for logarithmic abundances
const KeyAbundances = "abundances"

// KeyMassFractions is the configuration key for mass fractions
const KeyMassFractions = "mass_fractions"

// HydrogenSymbol is the element root used for every hydrogen isotope
const HydrogenSymbol = "h"

// HydrogenReferenceAbundance is the abundance of hydrogen on the 12 + log10(nX/nH) scale
const HydrogenReferenceAbundance = 12.0

// ElementNames lists lower-case element roots indexed by atomic number; index 0 is the neutron.
var ElementNames = []string{
	"neut", "h", "he", "li", "be", "b", "c", "n", "o", "f", "ne",
	"na", "mg", "al", "si", "p", "s", "cl", "ar", "k", "ca",
	"sc", "ti", "v", "cr", "mn", "fe", "co", "ni", "cu", "zn",
	"ga", "ge", "as", "se", "br", "kr", "rb", "sr", "y", "zr",
	"nb", "mo", "tc", "ru", "rh", "pd", "ag", "cd", "in", "sn",
	"sb", "te", "i", "xe", "cs", "ba", "la", "ce", "pr", "nd",
	"pm", "sm", "eu", "gd", "tb", "dy", "ho", "er", "tm", "yb",
	"lu", "hf", "ta", "w", "re", "os", "ir", "pt", "au", "hg",
	"tl", "pb", "bi", "po", "at", "rn", "fr", "ra", "ac", "th",
	"pa", "u", "np", "pu", "am", "cm", "bk", "cf", "es", "fm", "md",
	"no", "lr", "rf", "db", "sg", "bh", "hs", "mt", "ds", "rg", "cn",
}

// ElementName returns the element root for atomic number z, or "" when z is out of range.
func ElementName(z int) string {
	if z < 0 || z >= len(ElementNames) {
		return ""
	}
	return ElementNames[z]
}

// ElementAtomicWeights holds standard atomic weights (amu) per element root.
var ElementAtomicWeights = map[string]float64{
	// row 1
	"h":  1.00794,
	"he": 4.002602,

	// row 2
	"li": 6.941,
	"be": 9.012,
	"b":  10.811,
	"c":  12.0107,
	"n":  14.0067,
	"o":  15.9994,
	"f":  18.9984032,
	"ne": 20.1797,

	// row 3
	"na": 22.989770,
	"mg": 24.3050,
	"al": 26.981538,
	"si": 28.0855,
	"p":  30.973761,
	"s":  32.065,
	"cl": 35.453,
	"ar": 39.948,

	// row 4
	"k":  39.0983,
	"ca": 40.078,
	"sc": 44.955910,
	"ti": 47.867,
	"v":  50.9415,
	"cr": 51.9961,
	"mn": 54.938049,
	"fe": 55.845,
	"co": 58.933200,
	"ni": 58.6934,
	"cu": 63.546,
	"zn": 65.409,
	"ga": 69.723,
	"ge": 72.64,
	"as": 74.921,
	"se": 78.96,
	"br": 79.904,
	"kr": 83.798,

	// row 5
	"rb": 85.4678,
	"sr": 87.62,
	"y":  88.905,
	"zr": 91.224,
	"nb": 92.906,
	"mo": 95.94,
	"tc": 97.9072,
	"ru": 101.07,
	"rh": 102.905,
	"pd": 106.42,
	"ag": 107.8682,
	"cd": 112.411,
	"in": 114.818,
	"sn": 118.710,
	"sb": 121.760,
	"te": 127.60,
	"i":  126.904,
	"xe": 131.293,

	// row 6
	"cs": 132.905,
	"ba": 137.327,
	"la": 138.9055,
	"ce": 140.115,
	"pr": 140.90765,
	"nd": 144.24,
	"pm": 144.9127,
	"sm": 150.36,
	"eu": 151.965,
	"gd": 157.25,
	"tb": 158.92534,
	"dy": 162.50,
	"ho": 164.93032,
	"er": 167.26,
	"tm": 168.93421,
	"yb": 173.04,
	"lu": 174.967,
	"hf": 178.49,
	"ta": 180.9479,
	"w":  183.84,
	"re": 186.207,
	"os": 190.23,
	"ir": 192.22,
	"pt": 195.08,
	"au": 196.96654,
	"hg": 200.59,
	"tl": 204.3833,
	"pb": 207.2,
	"bi": 208.98037,
	"po": 208.9824,
	"at": 209.9871,
	"th": 232.0381,
	"pa": 231.03588,
	"u":  238.02891,
}
