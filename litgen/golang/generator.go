// Package golang emits the country table as a Go source file.
package golang

import (
	"go/format"
	"strconv"
	"strings"

	"github.com/veldran/countrygen/countries"
	"github.com/veldran/countrygen/errors"
	"github.com/veldran/countrygen/litgen"
)

// countriesImportPath resolves the Country type when emitting into a package
// other than countries itself.
const countriesImportPath = "github.com/veldran/countrygen/countries"

// recordTypePackage is the package that declares the Country type. Output
// emitted into this package needs no import.
const recordTypePackage = "countries"

// DefaultConstName is the name bound to the generated slice literal when
// Options.ConstName is empty.
const DefaultConstName = "All"

// Generator implements litgen.Generator for Go.
type Generator struct{}

// NewGenerator creates a new Go generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "go"
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns "go"
func (g *Generator) FileExtension() string {
	return "go"
}

// GenerateFile renders records as a gofmt-clean Go source file declaring one
// slice literal. Record fields are always emitted in the order Name, Flag,
// Code, DialCode regardless of the dataset's key order.
func (g *Generator) GenerateFile(records []countries.Country, opts litgen.Options) (string, error) {
	pkg := opts.PackageName
	if pkg == "" {
		pkg = recordTypePackage
	}
	constName := opts.ConstName
	if constName == "" {
		constName = DefaultConstName
	}
	typeName := "Country"

	var sb strings.Builder
	sb.WriteString("// Code generated by countrygen; DO NOT EDIT.\n")
	if opts.Source != "" {
		sb.WriteString("//\n// Source: " + opts.Source + "\n")
	}
	sb.WriteString("\npackage " + pkg + "\n\n")

	if pkg != recordTypePackage {
		sb.WriteString("import " + strconv.Quote(countriesImportPath) + "\n\n")
		typeName = "countries.Country"
	}

	sb.WriteString("// " + constName + " is the generated country table, in dataset order.\n")
	sb.WriteString("var " + constName + " = []" + typeName + "{\n")
	for _, c := range records {
		sb.WriteString("\t{\n")
		sb.WriteString("\t\tName:     " + strconv.Quote(c.Name) + ",\n")
		sb.WriteString("\t\tFlag:     " + strconv.Quote(c.Flag) + ",\n")
		sb.WriteString("\t\tCode:     " + strconv.Quote(c.Code) + ",\n")
		sb.WriteString("\t\tDialCode: " + strconv.Quote(c.DialCode) + ",\n")
		sb.WriteString("\t},\n")
	}
	sb.WriteString("}\n")

	// gofmt as the final authority keeps output deterministic and catches
	// any record content that would break the surrounding syntax.
	formatted, err := format.Source([]byte(sb.String()))
	if err != nil {
		return "", errors.Wrap(err, "generated source does not parse")
	}
	return string(formatted), nil
}
