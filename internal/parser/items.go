package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ninamercado/snackflow/internal/catalog"
	"github.com/ninamercado/snackflow/internal/model"
)

var (
	// 11-digit PH mobile numbers would otherwise be read as quantities.
	phoneRe = regexp.MustCompile(`\b09\d{9}\b`)

	// Explicit unit phrase: "<qty> <size> [of] <flavor>".
	unitPhraseRe = regexp.MustCompile(
		`(one|two|three|four|five|six|seven|eight|nine|ten|\d+)\s+(tub|pouch|maliit|malaki|100g|200g)\s+(?:of\s+)?([a-z\s]+)`)

	// Loose phrase: "<qty> [x] [size] <flavor>", size optional.
	loosePhraseRe = regexp.MustCompile(
		`(\d+|` + numberWordAlternation() + `)\s*(?:x\s*)?(?:(pouch|tub|maliit|malaki|100g|200g)\s+)?([a-z\s]+)`)
)

func numberWordAlternation() string {
	words := make([]string, 0, len(catalog.NumberWords))
	for w := range catalog.NumberWords {
		words = append(words, w)
	}
	// Longest first so "dalawang" is not cut short at "dalawa".
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if len(words[j]) > len(words[i]) {
				words[i], words[j] = words[j], words[i]
			}
		}
	}
	return strings.Join(words, "|")
}

// extractItems scans a single line for product mentions. The explicit unit
// phrase pattern is tried first and yields at most one item; only when it
// finds nothing does the looser pattern run, with no cap.
func extractItems(line string) []model.LineItem {
	lower := phoneRe.ReplaceAllString(strings.ToLower(line), "")

	for _, m := range unitPhraseRe.FindAllStringSubmatch(lower, -1) {
		if item, ok := resolveItem(m[1], m[2], m[3]); ok {
			return []model.LineItem{item}
		}
	}

	var items []model.LineItem
	for _, m := range loosePhraseRe.FindAllStringSubmatch(lower, -1) {
		if item, ok := resolveItem(m[1], m[2], m[3]); ok {
			items = append(items, item)
		}
	}
	return items
}

// resolveItem turns captured quantity, size, and flavor spans into a
// catalog-valid line item. A flavor that resolves to nothing discards the
// candidate; a missing size defaults to pouch.
func resolveItem(qtyText, sizeText, flavorText string) (model.LineItem, bool) {
	flavor := ""
	for _, alias := range catalog.FlavorAliases {
		if strings.Contains(flavorText, alias.Text) {
			flavor = alias.Code
			break
		}
	}
	if flavor == "" {
		return model.LineItem{}, false
	}

	size := catalog.SizePouch
	if sizeText != "" {
		for _, alias := range catalog.SizeAliases {
			if strings.Contains(sizeText, alias.Text) {
				size = alias.Code
				break
			}
		}
	}

	code := size + "-" + flavor
	if !catalog.Valid(code) {
		return model.LineItem{}, false
	}

	return model.LineItem{ProductCode: code, Quantity: parseQuantity(qtyText)}, true
}

func parseQuantity(text string) int {
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	if n, ok := catalog.NumberWords[text]; ok {
		return n
	}
	return 1
}
