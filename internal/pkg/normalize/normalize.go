// Package normalize canonicalizes free-text employee names and company
// labels so records from independent sources can be matched.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	companyPrefixRe = regexp.MustCompile(`(?i)^(ТОО|TOO)\s*`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
)

// Company strips the legal-form prefix (ТОО/TOO) and surrounding quotes
// from a company label and collapses whitespace. Casing is preserved; this
// is the display form. 'ТОО "AVC Production"' becomes 'AVC Production'.
func Company(name string) string {
	s := strings.TrimSpace(name)
	s = companyPrefixRe.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, `"`)
	s = strings.TrimRight(s, `"`)
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CompanyKey is the matching form of a company label: normalized and
// lowercased.
func CompanyKey(name string) string {
	return strings.ToLower(Company(name))
}

// EmployeeName produces the matching form of a full name: NFC-normalized,
// whitespace-collapsed, trimmed and lowercased. Display fields keep the
// original casing; only identity comparison uses this form.
func EmployeeName(name string) string {
	s := norm.NFC.String(name)
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// ShortName abbreviates "Иванов Иван Петрович" to "Иванов И. П." for
// display. Single-word names pass through unchanged.
func ShortName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return strings.TrimSpace(full)
	}
	out := parts[0] + " " + string([]rune(parts[1])[:1]) + "."
	if len(parts) > 2 {
		out += " " + string([]rune(parts[2])[:1]) + "."
	}
	return out
}

// Collator returns a collator for locale-aware name ordering. Collators
// buffer internally, so callers take a fresh one per sort.
func Collator() *collate.Collator {
	return collate.New(language.Russian)
}
