// Package composition loads chemistry configurations. A configuration gives either
// logarithmic abundances or mass fractions per isotope; both are checked against the
// isotope table and normalized into mass fractions that sum to one.
package composition
