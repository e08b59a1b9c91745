package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Libria-Library-Backend/agent/contract"
	textnormx "github.com/tanpawarit/Libria-Library-Backend/pkg/textnorm"
)

// Service answers the two inventory operations. Both are total: every
// failure surfaces as an in-band error response.
type Service struct {
	inv   *Inventory
	rules RuleSet
	clock func() time.Time
}

type ServiceOption func(*Service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithRules(rules RuleSet) ServiceOption {
	return func(s *Service) {
		if rules != nil {
			s.rules = rules
		}
	}
}

func NewService(inv *Inventory, opts ...ServiceOption) *Service {
	s := &Service{
		inv:   inv,
		rules: DefaultLoanRules,
		clock: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CheckAvailability resolves a title (optionally narrowed by author) to one
// book and reports whether it can be loaned, with its loan term.
func (s *Service) CheckAvailability(title, author string) contractx.Response {
	if strings.TrimSpace(title) == "" {
		return contractx.Error(contractx.ReasonMissingTitle, "Book title is required")
	}

	log.Info().Str("title", title).Str("author", author).Msg("check_availability")

	results := s.inv.Search(title, CriteriaTitle)

	if author != "" && len(results) > 0 {
		authorNorm := textnormx.Normalize(author)
		filtered := results[:0]
		for _, r := range results {
			if strings.Contains(textnormx.Normalize(r.Book.Author), authorNorm) {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	if len(results) == 0 {
		log.Info().Str("title", title).Msg("book_not_found")
		return contractx.BookNotFound(contractx.BookNotFoundPayload{
			SearchTitle: title,
			Message:     fmt.Sprintf("I couldn't find '%s' in the catalog", title),
			Suggestion:  "You can search by author or ask me for similar recommendations",
		})
	}

	if len(results) > 1 {
		options := make([]contractx.BookOption, 0, len(results))
		for _, r := range results {
			options = append(options, contractx.BookOption{
				Title:  r.Book.Title,
				Author: r.Book.Author,
			})
		}
		log.Info().Int("matches", len(results)).Msg("multiple_results")
		return contractx.MultipleResults(contractx.MultipleResultsPayload{
			SearchTitle: title,
			Options:     options,
		})
	}

	book := results[0].Book
	availability := AvailabilityOf(book.Copies)
	loan := s.rules.Resolve(book.Tags)

	if availability.Available {
		log.Info().
			Str("title", book.Title).
			Int("copies", availability.Quantity).
			Msg("book_available")
		return contractx.BookAvailable(contractx.BookAvailablePayload{
			Title:           book.Title,
			Author:          book.Author,
			AvailableCopies: availability.Quantity,
			Location:        book.Location,
			LoanDays:        loan.Days,
			AppliedRule:     loan.AppliedRule,
			ReturnDate:      ReturnDate(s.clock(), loan.Days),
			Conditions:      availability.Conditions,
		})
	}

	log.Info().
		Str("title", book.Title).
		Str("reason", string(availability.Reason)).
		Msg("book_not_available")
	return contractx.BookNotAvailable(contractx.BookNotAvailablePayload{
		Title:       book.Title,
		Author:      book.Author,
		Reason:      string(availability.Reason),
		Borrowed:    availability.Borrowed,
		UnderRepair: availability.UnderRepair,
		Message:     "All copies are currently borrowed",
	})
}

// SearchBooks lists every book matching the query under the given criteria,
// with availability and loan days per match.
func (s *Service) SearchBooks(query, criteria string) contractx.Response {
	if strings.TrimSpace(query) == "" {
		return contractx.Error(contractx.ReasonMissingQuery, "A search term is required")
	}

	parsed := ParseCriteria(criteria)
	log.Info().Str("query", query).Str("criteria", string(parsed)).Msg("search_books")

	results := s.inv.Search(query, parsed)

	books := make([]contractx.BookSummary, 0, len(results))
	for _, r := range results {
		availability := AvailabilityOf(r.Book.Copies)
		loan := s.rules.Resolve(r.Book.Tags)
		books = append(books, contractx.BookSummary{
			Title:           r.Book.Title,
			Author:          r.Book.Author,
			Available:       availability.Available,
			AvailableCopies: availability.Quantity,
			Location:        r.Book.Location,
			LoanDays:        loan.Days,
		})
	}

	log.Info().Int("results", len(books)).Msg("search_results")
	return contractx.SearchResults(contractx.SearchResultsPayload{
		Query:        query,
		Criteria:     string(parsed),
		TotalResults: len(books),
		Books:        books,
	})
}
