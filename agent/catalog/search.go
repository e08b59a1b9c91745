package catalog

import (
	"strings"

	textnormx "github.com/tanpawarit/Libria-Library-Backend/pkg/textnorm"
)

// Criteria restricts a search to one field. CriteriaAll searches title,
// author, and tags. Any other value matches nothing.
type Criteria string

const (
	CriteriaAll    Criteria = "all"
	CriteriaTitle  Criteria = "title"
	CriteriaAuthor Criteria = "author"
	CriteriaTag    Criteria = "tag"
)

// SearchResult pairs a matched book with its catalog key. Ephemeral, one
// query only.
type SearchResult struct {
	Key  string
	Book Book
}

// Search returns every book whose scoped field contains the normalized query
// as a substring, in catalog order. Title scope also matches against the
// catalog key.
func (inv *Inventory) Search(query string, criteria Criteria) []SearchResult {
	queryNorm := textnormx.Normalize(query)
	var results []SearchResult

	for _, key := range inv.keys {
		book := inv.books[key]
		match := false

		if criteria == CriteriaAll || criteria == CriteriaTitle {
			if strings.Contains(textnormx.Normalize(book.Title), queryNorm) ||
				strings.Contains(key, queryNorm) {
				match = true
			}
		}

		if !match && (criteria == CriteriaAll || criteria == CriteriaAuthor) {
			if strings.Contains(textnormx.Normalize(book.Author), queryNorm) {
				match = true
			}
		}

		if !match && (criteria == CriteriaAll || criteria == CriteriaTag) {
			for _, tag := range book.Tags {
				if strings.Contains(textnormx.Normalize(tag), queryNorm) {
					match = true
					break
				}
			}
		}

		if match {
			results = append(results, SearchResult{Key: key, Book: book})
		}
	}

	return results
}

// ParseCriteria maps the wire value to a Criteria, defaulting to all when
// absent. Unrecognized values are passed through unchanged and simply match
// no field.
func ParseCriteria(raw string) Criteria {
	if strings.TrimSpace(raw) == "" {
		return CriteriaAll
	}
	return Criteria(raw)
}
