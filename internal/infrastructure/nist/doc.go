// Package nist reads isotope data exported from the NIST atomic weights and isotopic
// compositions database. The export is a sequence of blank-line separated blocks of
// "Field = value" lines; only atomic number, atomic symbol, mass number and relative
// atomic mass are used.
package nist
