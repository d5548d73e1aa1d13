// Package litgen renders country records into source files declaring an
// equivalent compile-time constant collection.
//
// The package uses a two-layer design:
//  1. Language-agnostic loading and orchestration (run.go) reads the dataset
//     and drives a single read → transform → render → write pass
//  2. Language-specific generators (golang/, typescript/) format the records
//
// Generators are deterministic: the same dataset always renders to the same
// bytes, so CI can validate the checked-in table via countrygen check.
package litgen

import "github.com/veldran/countrygen/countries"

// Options control how the constant declaration is emitted.
type Options struct {
	// PackageName is the package the generated Go file belongs to. When it
	// differs from the countries package itself, the generator emits an
	// import so the record type still resolves. Ignored by TypeScript.
	PackageName string

	// ConstName is the name bound to the generated collection literal.
	// Empty selects the language default (All / ALL_COUNTRIES).
	ConstName string

	// Source is the dataset path recorded in the generated file header.
	Source string
}

// Generator is implemented by each target language emitter.
type Generator interface {
	// GenerateFile renders the complete output file for records,
	// in input order, with record fields in fixed order.
	GenerateFile(records []countries.Country, opts Options) (string, error)

	// FileExtension returns the extension for this language (e.g. "go", "ts")
	FileExtension() string

	// Language returns the language name (e.g. "go", "typescript")
	Language() string
}
