package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/tokopintar/product-advisor/internal/observability"
)

const sampleCatalogJSON = `{
	"products": [
		{"id": "p-1", "name": "Ponsel Uji", "category": "Smartphone", "brand": "Acme", "price": 1500000, "stock": 3, "description": "ponsel untuk pengujian", "image_url": "http://example.com/p-1.jpg"},
		{"id": 2, "name": "Laptop Uji", "category": " laptop ", "brand": "Acme", "price": "7500000", "stock": "5", "description": "laptop untuk pengujian"},
		{"id": "p-3", "category": "tablet", "brand": "Acme"}
	]
}`

func writeCatalogFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeCatalogFile(t, []byte(sampleCatalogJSON))
	loader := NewLoader(observability.Nop(), path)

	cat := loader.Load()
	require.NotNil(t, cat)
	assert.False(t, cat.UsedFallback)
	assert.Equal(t, "utf-8", cat.Encoding)
	require.Len(t, cat.Products, 3)

	first := cat.Products[0]
	assert.Equal(t, "p-1", first.ID)
	assert.Equal(t, "smartphone", first.Category, "category is lowercase-normalized")
	assert.Equal(t, 1500000.0, first.Price)
	assert.Equal(t, 3, first.Stock)

	second := cat.Products[1]
	assert.Equal(t, "2", second.ID, "numeric id is rendered as string")
	assert.Equal(t, "laptop", second.Category, "category is trimmed")
	assert.Equal(t, 7500000.0, second.Price, "numeric string price is parsed")
	assert.Equal(t, 5, second.Stock)
}

func TestLoader_Idempotent(t *testing.T) {
	path := writeCatalogFile(t, []byte(sampleCatalogJSON))
	loader := NewLoader(observability.Nop(), path)

	first := loader.Load()
	second := loader.Load()
	assert.Equal(t, first.Products, second.Products)
	assert.Equal(t, first.Encoding, second.Encoding)
}

func TestLoader_FieldDefaulting(t *testing.T) {
	path := writeCatalogFile(t, []byte(sampleCatalogJSON))
	cat := NewLoader(observability.Nop(), path).Load()

	require.Len(t, cat.Products, 3)
	sparse := cat.Products[2]
	assert.Equal(t, "", sparse.Name, "missing name defaults to empty string")
	assert.Equal(t, 0.0, sparse.Price, "missing price defaults to zero")
	assert.Equal(t, 0, sparse.Stock)
	assert.NotNil(t, sparse.Images, "images defaults to an empty slice, not nil")
}

func TestLoader_NegativePriceDefaultsToZero(t *testing.T) {
	doc := `{"products": [{"id": "p-1", "name": "Rusak", "category": "laptop", "price": -100}]}`
	path := writeCatalogFile(t, []byte(doc))

	cat := NewLoader(observability.Nop(), path).Load()
	require.Len(t, cat.Products, 1)
	assert.Equal(t, 0.0, cat.Products[0].Price)
}

func TestLoader_EncodingRoundTrip(t *testing.T) {
	utf8Path := writeCatalogFile(t, []byte(sampleCatalogJSON))
	utf8Cat := NewLoader(observability.Nop(), utf8Path).Load()
	require.False(t, utf8Cat.UsedFallback)

	// Same content written as UTF-16LE with a BOM must load identically.
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	utf16Bytes, err := enc.Bytes([]byte(sampleCatalogJSON))
	require.NoError(t, err)

	utf16Path := writeCatalogFile(t, utf16Bytes)
	utf16Cat := NewLoader(observability.Nop(), utf16Path).Load()

	require.False(t, utf16Cat.UsedFallback)
	assert.Equal(t, "utf-16le", utf16Cat.Encoding)
	assert.Equal(t, utf8Cat.Products, utf16Cat.Products)
}

func TestLoader_UTF8BOMStripped(t *testing.T) {
	path := writeCatalogFile(t, append([]byte("\xef\xbb\xbf"), []byte(sampleCatalogJSON)...))

	cat := NewLoader(observability.Nop(), path).Load()
	assert.False(t, cat.UsedFallback)
	assert.Len(t, cat.Products, 3)
}

func TestLoader_FallbackOnMissingFile(t *testing.T) {
	loader := NewLoader(observability.Nop(), filepath.Join(t.TempDir(), "does-not-exist.json"))

	cat := loader.Load()
	require.NotNil(t, cat)
	assert.True(t, cat.UsedFallback)
	assert.NotEmpty(t, cat.Products, "fallback catalog is never empty")
}

func TestLoader_FallbackOnMalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, []byte(`{"products": [ {"id": "p-1", `))

	cat := NewLoader(observability.Nop(), path).Load()
	require.NotNil(t, cat)
	assert.True(t, cat.UsedFallback)
	assert.NotEmpty(t, cat.Products)
	for _, p := range cat.Products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Category)
	}
}

func TestFallbackProducts_FreshCopies(t *testing.T) {
	a := fallbackProducts()
	b := fallbackProducts()
	require.Equal(t, a, b)

	a[0].Name = "mutated"
	assert.NotEqual(t, a[0].Name, b[0].Name, "each call returns an independent slice")
}
