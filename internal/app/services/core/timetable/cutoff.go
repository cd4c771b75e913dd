package timetable

import (
	"strings"

	"scolaris-service/internal/app/models"
)

// CutoffDate derives the last displayable calendar date from an academic
// year's term list: the end of the final trimester. Schools rename terms but
// keep numbering them, so the label heuristic (a label containing "3") is
// preferred over pure date ordering; when no term is labeled as the third,
// the term with the latest end date decides.
//
// No terms means no cutoff: nothing is suppressed.
func CutoffDate(terms []models.Term) *models.Date {
	if len(terms) == 0 {
		return nil
	}

	for _, term := range terms {
		if strings.Contains(term.Label, "3") {
			end := term.End
			return &end
		}
	}

	latest := terms[0]
	for _, term := range terms[1:] {
		if term.End.After(latest.End) {
			latest = term
		}
	}
	end := latest.End
	return &end
}
