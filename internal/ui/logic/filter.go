package logic

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tzpick/internal/domain"
)

// SearchFilter matches option labels against a query, ignoring case
type SearchFilter struct {
	lower cases.Caser
}

// NewSearchFilter creates a new search filter
func NewSearchFilter() *SearchFilter {
	return &SearchFilter{lower: cases.Lower(language.Und)}
}

// Matches reports whether label contains query, case-insensitively.
// An empty query matches everything.
func (sf *SearchFilter) Matches(label, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(sf.lower.String(label), sf.lower.String(query))
}

// Filter returns the options whose label matches query, in their original order
func (sf *SearchFilter) Filter(options []domain.Option, query string) []domain.Option {
	if query == "" {
		return options
	}

	q := sf.lower.String(query)
	var out []domain.Option
	for _, opt := range options {
		if strings.Contains(sf.lower.String(opt.Label), q) {
			out = append(out, opt)
		}
	}
	return out
}
