// Package catalog provides the local product catalog: loading, normalization,
// and read-only filtering over a JSON file on disk.
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Product is the canonical, post-transform product record. Every field has an
// explicit zero default so that a partially filled source record can never
// crash downstream code.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Brand        string   `json:"brand"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	Availability string   `json:"availability,omitempty"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Images       []string `json:"images"`
}

// catalogDocument mirrors the on-disk {"products": [...]} shape.
type catalogDocument struct {
	Products []rawProduct `json:"products"`
}

// rawProduct tolerates the heterogeneous shapes seen in source files: ids and
// stock counts may be numbers or strings, prices may be numeric strings.
type rawProduct struct {
	ID           json.RawMessage `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Price        json.RawMessage `json:"price"`
	Stock        json.RawMessage `json:"stock"`
	Availability json.RawMessage `json:"availability"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url"`
	Images       []string        `json:"images"`
}

// transform builds a canonical Product from a raw record, defaulting every
// missing or unparsable field instead of failing.
func (r rawProduct) transform() Product {
	images := r.Images
	if images == nil {
		images = []string{}
	}

	return Product{
		ID:           coerceString(r.ID),
		Name:         r.Name,
		Category:     strings.ToLower(strings.TrimSpace(r.Category)),
		Brand:        r.Brand,
		Price:        coercePrice(r.Price),
		Stock:        coerceInt(r.Stock),
		Availability: coerceString(r.Availability),
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Images:       images,
	}
}

// coerceString accepts a JSON string or number and renders it as a string.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// coercePrice accepts a JSON number or numeric string; anything unparsable
// (including negative values) defaults to 0.0.
func coercePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0.0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f < 0 {
			return 0.0
		}
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && f >= 0 {
			return f
		}
	}

	return 0.0
}

// coerceInt accepts a JSON integer, float, or numeric string.
func coerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var i int
	if err := json.Unmarshal(raw, &i); err == nil {
		return i
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i
		}
	}

	return 0
}
