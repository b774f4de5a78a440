package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/tokopintar/product-advisor/internal/observability"
)

// Catalog is the immutable in-memory product list. It is built once at
// startup and shared read-only by all requests; no write path exists.
type Catalog struct {
	Products     []Product
	Encoding     string
	UsedFallback bool
}

// Loader reads a {"products": [...]} JSON document from disk, tolerant of
// unknown text encoding and malformed content. Load never fails: every
// failure path ends in the built-in fallback product set.
type Loader struct {
	logger *observability.Logger
	path   string
}

// NewLoader creates a Loader for the given catalog file path.
func NewLoader(logger *observability.Logger, path string) *Loader {
	return &Loader{
		logger: logger.WithOperation("catalog_load"),
		path:   path,
	}
}

// candidateEncoding pairs an encoding name with its decoder. The decoder is
// nil for UTF-8, which needs no transformation.
type candidateEncoding struct {
	name    string
	decoder encoding.Encoding
}

// candidateEncodings is tried in order. UTF-8 first so the common case does
// not pay for the full list; single-byte code pages last because they decode
// any byte sequence and would otherwise shadow the UTF-16 variants.
var candidateEncodings = []candidateEncoding{
	{name: "utf-8", decoder: nil},
	{name: "utf-16le", decoder: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{name: "utf-16be", decoder: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	{name: "iso-8859-1", decoder: charmap.ISO8859_1},
	{name: "windows-1252", decoder: charmap.Windows1252},
}

// Load reads and parses the catalog file. It returns the fallback product set
// on any failure (missing file, undecodable bytes, malformed JSON) so that
// callers can always assume a non-empty catalog.
func (l *Loader) Load() *Catalog {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Error().Err(err).Str("path", l.path).Msg("Failed to read catalog file, using fallback products")
		return fallbackCatalog()
	}

	// Each encoding is attempted even after a structural JSON error: the same
	// syntax error usually reproduces under every encoding, but the source of
	// truth here is the decoded text, not the raw bytes, so we keep trying.
	for _, candidate := range candidateEncodings {
		text, err := decodeWith(raw, candidate.decoder)
		if err != nil {
			l.logger.Debug().
				Str("encoding", candidate.name).
				Err(err).
				Msg("Decode attempt failed")
			continue
		}

		// Strip a leading byte-order-mark regardless of which encoding
		// produced it; the JSON parser rejects it otherwise.
		text = strings.TrimPrefix(text, "\ufeff")

		var doc catalogDocument
		if err := json.Unmarshal([]byte(text), &doc); err != nil {
			l.logger.Debug().
				Str("encoding", candidate.name).
				Err(err).
				Msg("JSON parse failed for decoded content")
			continue
		}

		products := make([]Product, 0, len(doc.Products))
		for _, r := range doc.Products {
			products = append(products, r.transform())
		}

		l.logger.Info().
			Str("path", l.path).
			Str("encoding", candidate.name).
			Int("count", len(products)).
			Msg("Catalog loaded")

		return &Catalog{
			Products: products,
			Encoding: candidate.name,
		}
	}

	l.logger.Error().
		Str("path", l.path).
		Msg("All encodings exhausted, using fallback products")
	return fallbackCatalog()
}

// decodeWith decodes raw bytes with the given encoding. A nil encoding means
// UTF-8 passthrough.
func decodeWith(raw []byte, dec encoding.Encoding) (string, error) {
	if dec == nil {
		return string(raw), nil
	}

	out, err := dec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// fallbackCatalog returns the small deterministic product set served when the
// real catalog cannot be loaded. Persistent data-corruption problems are
// masked from callers here; the UsedFallback flag and the error log above are
// the only signals.
func fallbackCatalog() *Catalog {
	return &Catalog{
		Products:     fallbackProducts(),
		UsedFallback: true,
	}
}

// fallbackProducts builds a fresh copy so that no caller can alias the
// backing array between loads.
func fallbackProducts() []Product {
	return []Product{
		{
			ID:          "fallback-1",
			Name:        "Samsung Galaxy A55",
			Category:    "smartphone",
			Brand:       "Samsung",
			Price:       5999000,
			Stock:       10,
			Description: "Smartphone kelas menengah dengan layar AMOLED 6.6 inci dan kamera 50MP.",
			Images:      []string{},
		},
		{
			ID:          "fallback-2",
			Name:        "ASUS Vivobook 14",
			Category:    "laptop",
			Brand:       "ASUS",
			Price:       8499000,
			Stock:       5,
			Description: "Laptop ringan untuk kerja dan kuliah, Ryzen 5 dengan RAM 16GB.",
			Images:      []string{},
		},
		{
			ID:          "fallback-3",
			Name:        "JBL Tune 520BT",
			Category:    "headphone",
			Brand:       "JBL",
			Price:       699000,
			Stock:       25,
			Description: "Headphone nirkabel dengan baterai hingga 57 jam.",
			Images:      []string{},
		},
	}
}
