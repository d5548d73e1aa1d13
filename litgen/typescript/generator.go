// Package typescript emits the country table as a TypeScript module for
// front-end consumers.
package typescript

import (
	"encoding/json"
	"strings"

	"github.com/veldran/countrygen/countries"
	"github.com/veldran/countrygen/litgen"
)

// typesImport is the module specifier the generated file imports the Country
// interface from.
const typesImport = "./country"

// DefaultConstName is the name bound to the generated array literal when
// Options.ConstName is empty.
const DefaultConstName = "ALL_COUNTRIES"

// Generator implements litgen.Generator for TypeScript.
type Generator struct{}

// NewGenerator creates a new TypeScript generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "typescript"
func (g *Generator) Language() string {
	return "typescript"
}

// FileExtension returns "ts"
func (g *Generator) FileExtension() string {
	return "ts"
}

// GenerateFile renders records as a TypeScript module declaring one const
// array of Country objects, fields in fixed order name, flag, code, dialCode.
func (g *Generator) GenerateFile(records []countries.Country, opts litgen.Options) (string, error) {
	constName := opts.ConstName
	if constName == "" {
		constName = DefaultConstName
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by countrygen; DO NOT EDIT.\n")
	if opts.Source != "" {
		sb.WriteString("//\n// Source: " + opts.Source + "\n")
	}
	sb.WriteString("\nimport type { Country } from \"" + typesImport + "\";\n\n")

	if len(records) == 0 {
		sb.WriteString("export const " + constName + ": Country[] = [];\n")
		return sb.String(), nil
	}

	sb.WriteString("export const " + constName + ": Country[] = [\n")
	for _, c := range records {
		sb.WriteString("  {\n")
		sb.WriteString("    name: " + tsString(c.Name) + ",\n")
		sb.WriteString("    flag: " + tsString(c.Flag) + ",\n")
		sb.WriteString("    code: " + tsString(c.Code) + ",\n")
		sb.WriteString("    dialCode: " + tsString(c.DialCode) + ",\n")
		sb.WriteString("  },\n")
	}
	sb.WriteString("];\n")

	return sb.String(), nil
}

// tsString quotes s as a TypeScript string literal. JSON string syntax is a
// subset of TypeScript, so json.Marshal gives correct escaping for quotes,
// backslashes, and control characters while leaving glyphs literal.
func tsString(s string) string {
	quoted, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail
		panic(err)
	}
	return string(quoted)
}
