package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClock validates a shift boundary in HH:MM form.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// IsValidDate validates a canonical DD.MM.YYYY date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("02.01.2006", dateStr)
	return date, err == nil
}

// IsValidSortDirection accepts the two supported sort directions.
func IsValidSortDirection(s string) bool {
	return s == "" || s == "asc" || s == "desc"
}
