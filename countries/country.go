// Package countries defines the country record type, loads the canonical
// countries.json dataset, and hosts the generated constant table.
package countries

// Country is one record of the canonical dataset: a display name, its flag
// glyph, a short regional code, and the international dialing prefix.
//
// Values are immutable once loaded. The loader enforces presence of all four
// fields but no length, format, or uniqueness constraints.
type Country struct {
	Name     string `json:"name"`
	Flag     string `json:"flag"`
	Code     string `json:"code"`
	DialCode string `json:"dial_code"`
}
