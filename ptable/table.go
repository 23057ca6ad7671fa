package ptable

import "strings"

// Isotope is one stable isotope of an element: its mass in daltons and
// its natural abundance (a fraction summing to 1 across an element's
// Isotopes).
type Isotope struct {
	MassDa    float64
	Abundance float64
}

// Element is one entry of the table: a symbol and its stable isotopes,
// ordered from lightest to heaviest.
type Element struct {
	Symbol   string
	Isotopes []Isotope
}

// table holds the elements this package knows about, keyed by symbol.
// Populated once in init from the elements slice below.
var table map[string]Element

var elements = []Element{
	{
		Symbol: "H",
		Isotopes: []Isotope{
			{MassDa: 1.0078250319, Abundance: 0.999885},
			{MassDa: 2.0141017780, Abundance: 0.000115},
		},
	},
	{
		Symbol: "C",
		Isotopes: []Isotope{
			{MassDa: 12.0000000000, Abundance: 0.9893},
			{MassDa: 13.0033548378, Abundance: 0.0107},
		},
	},
	{
		Symbol: "N",
		Isotopes: []Isotope{
			{MassDa: 14.0030740052, Abundance: 0.99636},
			{MassDa: 15.0001088984, Abundance: 0.00364},
		},
	},
	{
		Symbol: "O",
		Isotopes: []Isotope{
			{MassDa: 15.9949146221, Abundance: 0.99757},
			{MassDa: 16.9991315000, Abundance: 0.00038},
			{MassDa: 17.9991604000, Abundance: 0.00205},
		},
	},
	{
		Symbol: "S",
		Isotopes: []Isotope{
			{MassDa: 31.97207069, Abundance: 0.9499},
			{MassDa: 32.97145850, Abundance: 0.0075},
			{MassDa: 33.96786690, Abundance: 0.0425},
			{MassDa: 35.96708076, Abundance: 0.0001},
		},
	},
	{
		Symbol: "P",
		Isotopes: []Isotope{
			{MassDa: 30.97376151, Abundance: 1.0},
		},
	},
	{
		Symbol: "Na",
		Isotopes: []Isotope{
			{MassDa: 22.98976928, Abundance: 1.0},
		},
	},
	{
		Symbol: "Cl",
		Isotopes: []Isotope{
			{MassDa: 34.96885268, Abundance: 0.7576},
			{MassDa: 36.96590259, Abundance: 0.2424},
		},
	},
}

func init() {
	table = make(map[string]Element, len(elements))
	for _, e := range elements {
		table[e.Symbol] = e
	}
}

// Lookup returns the element registered under symbol (case-sensitive,
// matching standard chemical notation), and whether it was found.
func Lookup(symbol string) (Element, bool) {
	e, ok := table[symbol]
	return e, ok
}

// Symbols returns every element symbol this table knows, in an
// unspecified order.
func Symbols() []string {
	symbols := make([]string, 0, len(table))
	for s := range table {
		symbols = append(symbols, s)
	}
	return symbols
}

// KnownSymbolsHint renders the table's symbols as a comma-joined string,
// used to build helpful "unknown element" error messages.
func KnownSymbolsHint() string {
	return strings.Join(Symbols(), ", ")
}
