package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var idCaser = cases.Upper(language.Und)

// NormalizeID canonicalizes a participant ID for comparison and registry
// lookups: surrounding whitespace is stripped and letters are upper-cased, so
// " abc-123 " and "ABC-123" identify the same participant.
func NormalizeID(id string) string {
	return idCaser.String(strings.TrimSpace(id))
}
