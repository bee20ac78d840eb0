package catalog

import "strings"

// CategoryAll matches every category.
const CategoryAll = "all"

// Filter returns the products passing both the category selector and the
// free-text search term, in their original order. Category matches are
// case-insensitive; the term matches as a case-insensitive substring of the
// description or the category. An empty term passes everything.
func Filter(products []Product, category, term string) []Product {
	category = strings.ToLower(strings.TrimSpace(category))
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && !strings.EqualFold(p.Category, category) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
