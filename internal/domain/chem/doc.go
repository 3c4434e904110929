// Package chem defines the core types for isotope data and chemical composition,
// such as isotope records, the immutable isotope table, composition specifications and
// normalized composition results, together with the loader contracts and the error taxonomy
// shared by the infrastructure implementations.
package chem
