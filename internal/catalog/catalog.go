// Package catalog holds the fixed product catalog and the alias tables used
// to resolve free-form Filipino/English order text into product codes.
package catalog

import (
	"github.com/ninamercado/snackflow/internal/model"
)

// Product is an immutable catalog row.
type Product struct {
	Code   string
	Flavor string
	Size   string // "Pouch" or "Tub"
	Price  int    // whole pesos
}

// Size prefixes used in product codes.
const (
	SizePouch = "P"
	SizeTub   = "2L"
)

// Products is the full catalog, keyed by product code. Read-only after
// process start; safe for concurrent use.
var Products = map[string]Product{
	"P-CHZ":  {Code: "P-CHZ", Flavor: "Cheese", Size: "Pouch", Price: 150},
	"P-SC":   {Code: "P-SC", Flavor: "Sour Cream", Size: "Pouch", Price: 150},
	"P-BBQ":  {Code: "P-BBQ", Flavor: "BBQ", Size: "Pouch", Price: 150},
	"P-OG":   {Code: "P-OG", Flavor: "Original", Size: "Pouch", Price: 150},
	"2L-CHZ": {Code: "2L-CHZ", Flavor: "Cheese", Size: "Tub", Price: 290},
	"2L-SC":  {Code: "2L-SC", Flavor: "Sour Cream", Size: "Tub", Price: 290},
	"2L-BBQ": {Code: "2L-BBQ", Flavor: "BBQ", Size: "Tub", Price: 290},
	"2L-OG":  {Code: "2L-OG", Flavor: "Original", Size: "Tub", Price: 290},
}

// Alias pairs a text fragment with the canonical token it resolves to.
type Alias struct {
	Text string
	Code string
}

// FlavorAliases maps free-text flavor mentions to flavor codes. Entries are
// matched case-insensitively as substrings, in order; multi-word aliases
// come before their single-word prefixes so "sour cream" wins over "sour".
var FlavorAliases = []Alias{
	{"sour cream", "SC"},
	{"cheesy", "CHZ"},
	{"cheese", "CHZ"},
	{"keso", "CHZ"},
	{"sour", "SC"},
	{"sc", "SC"},
	{"barbeque", "BBQ"},
	{"barbecue", "BBQ"},
	{"bbq", "BBQ"},
	{"original", "OG"},
	{"plain", "OG"},
	{"orig", "OG"},
}

// SizeAliases maps size indicator words to size prefixes.
var SizeAliases = []Alias{
	{"pouch", SizePouch},
	{"maliit", SizePouch},
	{"100 grams", SizePouch},
	{"100g", SizePouch},
	{"tub", SizeTub},
	{"malaki", SizeTub},
	{"200 grams", SizeTub},
	{"200g", SizeTub},
}

// NumberWords maps Filipino and English cardinal words to quantities.
var NumberWords = map[string]int{
	"isa": 1, "isang": 1, "dalawa": 2, "dalawang": 2, "tatlo": 3,
	"apat": 4, "lima": 5, "anim": 6, "pito": 7, "walo": 8,
	"siyam": 9, "sampu": 10, "sampung": 10,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Lookup returns the catalog entry for a product code.
func Lookup(code string) (Product, bool) {
	p, ok := Products[code]
	return p, ok
}

// Valid reports whether a product code exists in the catalog.
func Valid(code string) bool {
	_, ok := Products[code]
	return ok
}

// Subtotal sums price times quantity over the catalog-valid items.
// Unknown codes contribute nothing.
func Subtotal(items []model.LineItem) int {
	total := 0
	for _, item := range items {
		if p, ok := Products[item.ProductCode]; ok {
			total += p.Price * item.Quantity
		}
	}
	return total
}
