package golang

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldran/countrygen/countries"
	"github.com/veldran/countrygen/litgen"
)

func TestGenerateFileSingleRecord(t *testing.T) {
	records := []countries.Country{
		{Name: "Albania", Flag: "🇦🇱", Code: "AL", DialCode: "+355"},
	}

	out, err := NewGenerator().GenerateFile(records, litgen.Options{Source: "countries.json"})
	require.NoError(t, err)

	want := `// Code generated by countrygen; DO NOT EDIT.
//
// Source: countries.json

package countries

// All is the generated country table, in dataset order.
var All = []Country{
	{
		Name:     "Albania",
		Flag:     "🇦🇱",
		Code:     "AL",
		DialCode: "+355",
	},
}
`
	assert.Equal(t, want, out)
}

func TestGenerateFileRecordCountAndOrder(t *testing.T) {
	records := []countries.Country{
		{Name: "Zimbabwe", Flag: "🇿🇼", Code: "ZW", DialCode: "+263"},
		{Name: "Albania", Flag: "🇦🇱", Code: "AL", DialCode: "+355"},
		{Name: "Japan", Flag: "🇯🇵", Code: "JP", DialCode: "+81"},
	}

	out, err := NewGenerator().GenerateFile(records, litgen.Options{})
	require.NoError(t, err)

	decoded := decodeTable(t, out)
	assert.Equal(t, records, decoded)
}

func TestGenerateFileRoundTrip(t *testing.T) {
	// String identity must survive the literal rendering, including quotes,
	// backslashes, accents, and flag glyphs.
	records := []countries.Country{
		{Name: "Côte d'Ivoire", Flag: "🇨🇮", Code: "CI", DialCode: "+225"},
		{Name: `has "quotes" and \backslash`, Flag: "🇺🇳", Code: "XX", DialCode: "+000"},
		{Name: "", Flag: "", Code: "", DialCode: ""},
	}

	out, err := NewGenerator().GenerateFile(records, litgen.Options{})
	require.NoError(t, err)

	decoded := decodeTable(t, out)
	assert.Equal(t, records, decoded)
}

func TestGenerateFileFieldOrderFixed(t *testing.T) {
	out, err := NewGenerator().GenerateFile([]countries.Country{
		{Name: "Japan", Flag: "🇯🇵", Code: "JP", DialCode: "+81"},
	}, litgen.Options{})
	require.NoError(t, err)

	name := strings.Index(out, "Name:")
	flag := strings.Index(out, "Flag:")
	code := strings.Index(out, "Code:")
	dial := strings.Index(out, "DialCode:")
	require.True(t, name >= 0 && flag >= 0 && code >= 0 && dial >= 0)
	assert.True(t, name < flag && flag < code && code < dial,
		"fields must render in order Name, Flag, Code, DialCode")
}

func TestGenerateFileEmpty(t *testing.T) {
	out, err := NewGenerator().GenerateFile(nil, litgen.Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "var All = []Country{}")
	assert.Empty(t, decodeTable(t, out))
}

func TestGenerateFileIdempotent(t *testing.T) {
	records := []countries.Country{
		{Name: "Chile", Flag: "🇨🇱", Code: "CL", DialCode: "+56"},
	}
	gen := NewGenerator()

	first, err := gen.GenerateFile(records, litgen.Options{Source: "countries.json"})
	require.NoError(t, err)
	second, err := gen.GenerateFile(records, litgen.Options{Source: "countries.json"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateFileGofmtClean(t *testing.T) {
	out, err := NewGenerator().GenerateFile([]countries.Country{
		{Name: "Norway", Flag: "🇳🇴", Code: "NO", DialCode: "+47"},
		{Name: "Peru", Flag: "🇵🇪", Code: "PE", DialCode: "+51"},
	}, litgen.Options{})
	require.NoError(t, err)

	formatted, err := format.Source([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, out, string(formatted), "output must already be gofmt-clean")
}

func TestGenerateFileForeignPackage(t *testing.T) {
	out, err := NewGenerator().GenerateFile([]countries.Country{
		{Name: "Spain", Flag: "🇪🇸", Code: "ES", DialCode: "+34"},
	}, litgen.Options{PackageName: "eu"})
	require.NoError(t, err)

	assert.Contains(t, out, "package eu\n")
	assert.Contains(t, out, `import "github.com/veldran/countrygen/countries"`)
	assert.Contains(t, out, "[]countries.Country{")
}

func TestGenerateFileConstNameOverride(t *testing.T) {
	out, err := NewGenerator().GenerateFile(nil, litgen.Options{ConstName: "Everything"})
	require.NoError(t, err)

	assert.Contains(t, out, "var Everything = []Country{}")
	assert.NotContains(t, out, "var All")
}

// decodeTable parses generated Go source and extracts the declared records,
// closing the loop from literal text back to field values.
func decodeTable(t *testing.T, src string) []countries.Country {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "table.go", src, 0)
	require.NoError(t, err, "generated output must be valid Go")

	var records []countries.Country
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		spec, ok := gen.Specs[0].(*ast.ValueSpec)
		require.True(t, ok)
		slice, ok := spec.Values[0].(*ast.CompositeLit)
		require.True(t, ok, "constant must be bound to a composite literal")

		for _, elt := range slice.Elts {
			rec, ok := elt.(*ast.CompositeLit)
			require.True(t, ok, "each element must be a record literal")

			var c countries.Country
			for _, kv := range rec.Elts {
				pair, ok := kv.(*ast.KeyValueExpr)
				require.True(t, ok)
				lit, ok := pair.Value.(*ast.BasicLit)
				require.True(t, ok)
				val, err := strconv.Unquote(lit.Value)
				require.NoError(t, err)

				switch pair.Key.(*ast.Ident).Name {
				case "Name":
					c.Name = val
				case "Flag":
					c.Flag = val
				case "Code":
					c.Code = val
				case "DialCode":
					c.DialCode = val
				}
			}
			records = append(records, c)
		}
	}
	return records
}
