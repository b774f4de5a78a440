// Package intent derives best-effort query constraints from free-text
// questions, without consulting the AI backend.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tokopintar/product-advisor/internal/observability"
)

// Intent is the per-request (category, max price) pair heuristically derived
// from a question. An empty Category or nil MaxPrice means "not detected",
// which is a normal outcome, not an error.
type Intent struct {
	Category string
	MaxPrice *float64
}

// categoryKeywords maps a canonical category to its trigger keywords.
// Declaration order is the tie-break: the first category with any substring
// match in the lower-cased question wins, even when synonyms physically
// overlap across categories (e.g. "handphone" vs "phone").
type categoryKeywords struct {
	name     string
	keywords []string
}

// pricePattern matches Indonesian max-price phrasings followed by a number,
// e.g. "maksimal 5000000", "kurang dari 2.500.000", "di bawah Rp 3 juta".
// The keyword anchor keeps unrelated numbers (storage sizes, model numbers)
// from being read as prices, though it cannot eliminate that risk entirely.
var pricePattern = regexp.MustCompile(`(?i)(?:maksimal|maksimum|maks|max|kurang dari|di\s?bawah|budget)\s*(?:rp\.?\s*)?([0-9][0-9.,]*)\s*(juta|jt|ribu|rb)?`)

// Extractor performs deterministic, rule-based intent extraction.
type Extractor struct {
	logger     *observability.Logger
	categories []categoryKeywords
}

// NewExtractor creates an Extractor with the fixed category keyword mapping.
func NewExtractor(logger *observability.Logger) *Extractor {
	return &Extractor{
		logger: logger.WithOperation("intent_extract"),
		categories: []categoryKeywords{
			{name: "smartphone", keywords: []string{"smartphone", "hp", "handphone", "phone", "telepon", "ponsel"}},
			{name: "laptop", keywords: []string{"laptop", "notebook", "macbook"}},
			{name: "tablet", keywords: []string{"tablet", "ipad"}},
			{name: "kamera", keywords: []string{"kamera", "camera", "mirrorless", "dslr"}},
			{name: "headphone", keywords: []string{"headphone", "earphone", "headset", "tws", "earbud"}},
			{name: "smartwatch", keywords: []string{"smartwatch", "jam pintar", "jam tangan"}},
			{name: "televisi", keywords: []string{"televisi", "smart tv", "tv"}},
		},
	}
}

// Categories returns the canonical category names in declaration order.
func (e *Extractor) Categories() []string {
	names := make([]string, 0, len(e.categories))
	for _, c := range e.categories {
		names = append(names, c.name)
	}
	return names
}

// Extract derives the intent from a question. The same input always yields
// the same result: no randomness, no external calls.
func (e *Extractor) Extract(question string) Intent {
	q := strings.ToLower(question)

	it := Intent{
		Category: e.extractCategory(q),
		MaxPrice: e.extractMaxPrice(q),
	}

	evt := e.logger.Debug().Str("question", question).Str("category", it.Category)
	if it.MaxPrice != nil {
		evt = evt.Float64("max_price", *it.MaxPrice)
	}
	evt.Msg("Extracted intent")

	return it
}

// extractCategory scans categories in declaration order; the first keyword
// set with any substring match wins. Only a single category is returned.
func (e *Extractor) extractCategory(q string) string {
	for _, c := range e.categories {
		for _, kw := range c.keywords {
			if strings.Contains(q, kw) {
				return c.name
			}
		}
	}
	return ""
}

// extractMaxPrice matches the anchored price pattern and parses the captured
// number. A parse failure logs a warning and leaves the price absent rather
// than failing the request.
func (e *Extractor) extractMaxPrice(q string) *float64 {
	m := pricePattern.FindStringSubmatch(q)
	if m == nil {
		return nil
	}

	price, err := parsePrice(m[1], m[2])
	if err != nil {
		e.logger.Warn().
			Str("raw", m[1]).
			Err(err).
			Msg("Unparsable price in question, ignoring price constraint")
		return nil
	}

	return &price
}

// parsePrice normalizes an Indonesian-locale number ("." as thousands
// separator, "," as decimal separator) and applies a juta/ribu multiplier
// when present.
func parsePrice(raw, unit string) (float64, error) {
	s := strings.TrimRight(raw, ".,")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	switch unit {
	case "juta", "jt":
		price *= 1_000_000
	case "ribu", "rb":
		price *= 1_000
	}

	return price, nil
}
