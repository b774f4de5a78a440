package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tokopintar/product-advisor/internal/catalog"
)

// Table displays data in a formatted table.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}

// ProductTable displays products as a table.
func ProductTable(products []catalog.Product) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			truncate(p.Name, 40),
			p.Category,
			p.Brand,
			fmt.Sprintf("Rp %.0f", p.Price),
		})
	}
	Table([]string{"ID", "Name", "Category", "Brand", "Price"}, rows)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
