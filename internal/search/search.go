// Package search ranks catalog entries against a free-text query for
// the POS lookup box and the inventory filter. The scoring is a small
// fixed ladder, not a search engine: a scanned barcode always beats a
// typed name, and a loose "ccb" style subsequence is the weakest hit
// that still counts.
package search

import (
	"sort"
	"strings"

	"saripos/internal/models"
)

// Score ladder, strongest match first.
const (
	scoreBarcodeExact  = 100
	scoreBarcodePrefix = 80
	scoreNameExact     = 60
	scoreNameSubstring = 40
	scoreSubsequence   = 20
)

// Score rates how well a product matches the query. Zero means no
// match by any rule.
func Score(p models.Product, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	name := strings.ToLower(p.Name)
	barcode := strings.ToLower(p.Barcode)

	switch {
	case barcode != "" && barcode == q:
		return scoreBarcodeExact
	case barcode != "" && strings.HasPrefix(barcode, q):
		return scoreBarcodePrefix
	case name == q:
		return scoreNameExact
	case strings.Contains(name, q):
		return scoreNameSubstring
	case isSubsequence(q, name):
		return scoreSubsequence
	}
	return 0
}

// Rank filters and orders products by descending score. Products
// scoring zero are dropped. Ties keep their input order (stable), and
// an empty query returns the input list unchanged.
func Rank(products []models.Product, query string) []models.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	type scored struct {
		product models.Product
		score   int
	}
	var hits []scored
	for _, p := range products {
		if s := Score(p, query); s > 0 {
			hits = append(hits, scored{product: p, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	ranked := make([]models.Product, 0, len(hits))
	for _, h := range hits {
		ranked = append(ranked, h.product)
	}
	return ranked
}

// isSubsequence reports whether every rune of needle appears in hay in
// order, not necessarily adjacent ("ccb" matches "corned beef").
func isSubsequence(needle, hay string) bool {
	if needle == "" {
		return false
	}
	i := 0
	runes := []rune(needle)
	for _, r := range hay {
		if r == runes[i] {
			i++
			if i == len(runes) {
				return true
			}
		}
	}
	return false
}
