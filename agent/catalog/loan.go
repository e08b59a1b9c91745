package catalog

import (
	"fmt"
	"strings"
	"time"

	textnormx "github.com/tanpawarit/Libria-Library-Backend/pkg/textnorm"
)

// StandardRuleKey is the fallback rule every rule set must carry; it matches
// any book regardless of tags.
const StandardRuleKey = "STANDARD"

// LoanRule defines a loan duration for one canonical tag. Lower priority
// numbers take precedence.
type LoanRule struct {
	Days        int
	Priority    int
	Description string
}

// RuleSet maps canonical uppercase tag keys to loan rules.
type RuleSet map[string]LoanRule

// DefaultLoanRules is the library's loan policy by material type.
var DefaultLoanRules = RuleSet{
	"REFERENCE": {
		Days:        7,
		Priority:    1,
		Description: "Frequently consulted reference material",
	},
	"NEW": {
		Days:        14,
		Priority:    2,
		Description: "Recent acquisitions with high demand",
	},
	"NOVEL_EXTENDED": {
		Days:        28,
		Priority:    3,
		Description: "Extended works requiring more reading time",
	},
	StandardRuleKey: {
		Days:        21,
		Priority:    5,
		Description: "Standard loan for most materials",
	},
}

// LoanTerm is the resolved loan duration for a book.
type LoanTerm struct {
	Days        int
	AppliedRule string
	Priority    int
	Description string
}

// Resolve folds the book's tags against the rule set, starting from the
// STANDARD fallback. A strictly lower priority wins; on equal priority the
// longer duration wins (the tie-break favors the reader). Tags outside the
// table are ignored.
func (rs RuleSet) Resolve(tags []string) LoanTerm {
	winner := rs[StandardRuleKey]
	appliedTag := StandardRuleKey

	for _, tag := range tags {
		key := strings.ToUpper(strings.ReplaceAll(textnormx.Normalize(tag), " ", "_"))
		rule, ok := rs[key]
		if !ok {
			continue
		}

		if rule.Priority < winner.Priority {
			winner = rule
			appliedTag = key
		} else if rule.Priority == winner.Priority && rule.Days > winner.Days {
			winner = rule
			appliedTag = key
		}
	}

	return LoanTerm{
		Days:        winner.Days,
		AppliedRule: appliedTag,
		Priority:    winner.Priority,
		Description: winner.Description,
	}
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ReturnDate renders the due date, days from now, in the desk's readable
// format.
func ReturnDate(now time.Time, days int) string {
	due := now.AddDate(0, 0, days)
	return fmt.Sprintf("%d of %s of %d", due.Day(), monthNames[due.Month()-1], due.Year())
}
