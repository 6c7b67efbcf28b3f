// Package reconcile groups raw swipe events into one classified record
// per employee per day.
package reconcile

import (
	"sort"
	"strings"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	"github.com/tabelio/attendance-backend-go/internal/pkg/normalize"
	"github.com/tabelio/attendance-backend-go/internal/pkg/timefmt"
)

// Localized event-kind tokens matched by case-insensitive substring.
const (
	entryToken = "вход"
	exitToken  = "выход"
)

// EmployeeDays is one employee's reconciled days, chronologically sorted.
type EmployeeDays struct {
	Name string
	Logs []analysis.DailyLog
}

// Result carries the reconciled buckets plus the count of rows dropped by
// the row-level skip policy, so the filtering stays observable.
type Result struct {
	Employees   []EmployeeDays
	SkippedRows int
}

type dayBucket struct {
	entries []string
	exits   []string
}

// Reconcile buckets raw rows by (employee, canonical date) and classifies
// each day against the shift boundaries. When a roster is supplied, rows
// for names absent from it are dropped; that is a filtering policy, not an
// error. Malformed rows are skipped and counted, never fatal. The whole
// operation fails only when no employee yields a single daily log.
func Reconcile(rows []analysis.RawEvent, shift analysis.Shift, roster []directory.Entry) (Result, error) {
	var known map[string]struct{}
	if len(roster) > 0 {
		known = make(map[string]struct{}, len(roster))
		for _, entry := range roster {
			known[normalize.EmployeeName(entry.EmployeeName)] = struct{}{}
		}
	}

	buckets := make(map[string]map[string]*dayBucket)
	skipped := 0

	for _, row := range rows {
		name := strings.TrimSpace(row.EmployeeName)
		event := strings.ToLower(strings.TrimSpace(row.Event))
		if name == "" || strings.TrimSpace(row.Date) == "" || strings.TrimSpace(row.Time) == "" || event == "" {
			skipped++
			continue
		}
		if known != nil {
			if _, ok := known[normalize.EmployeeName(name)]; !ok {
				skipped++
				continue
			}
		}

		date := timefmt.CanonicalDate(row.Date)
		clock := timefmt.CanonicalTime(row.Time)
		if date == "" || clock == "" {
			skipped++
			continue
		}

		days, ok := buckets[name]
		if !ok {
			days = make(map[string]*dayBucket)
			buckets[name] = days
		}
		day, ok := days[date]
		if !ok {
			day = &dayBucket{}
			days[date] = day
		}

		// Rows matching neither token still consume their bucket slot but
		// contribute to neither boundary.
		if strings.Contains(event, entryToken) {
			day.entries = append(day.entries, clock)
		} else if strings.Contains(event, exitToken) {
			day.exits = append(day.exits, clock)
		}
	}

	shiftStart := timefmt.TimeToMinutes(shift.Start)
	shiftEnd := timefmt.TimeToMinutes(shift.End)

	result := Result{SkippedRows: skipped}
	for name, days := range buckets {
		logs := make([]analysis.DailyLog, 0, len(days))
		for date, day := range days {
			logs = append(logs, buildDailyLog(date, day, shiftStart, shiftEnd))
		}
		sort.Slice(logs, func(i, j int) bool {
			return timefmt.DateSortKey(logs[i].Date) < timefmt.DateSortKey(logs[j].Date)
		})
		result.Employees = append(result.Employees, EmployeeDays{Name: name, Logs: logs})
	}
	sort.Slice(result.Employees, func(i, j int) bool {
		return result.Employees[i].Name < result.Employees[j].Name
	})

	if len(result.Employees) == 0 {
		return Result{}, analysis.ErrNoUsableData
	}
	return result, nil
}

func buildDailyLog(date string, day *dayBucket, shiftStart, shiftEnd int) analysis.DailyLog {
	firstEntry := minTime(day.entries)
	lastExit := maxTime(day.exits)

	var workDuration string
	if firstEntry != "" && lastExit != "" {
		workMinutes := timefmt.TimeToMinutes(lastExit) - timefmt.TimeToMinutes(firstEntry)
		if workMinutes < 0 {
			// Exit-before-entry data errors clamp to zero rather than
			// reporting negative durations.
			workMinutes = 0
		}
		workDuration = timefmt.FormatDuration(float64(workMinutes))
	}

	isLate := firstEntry != "" && timefmt.TimeToMinutes(firstEntry) > shiftStart
	// The > 0 guard excludes midnight-epoch artifacts left over from raw
	// time parsing.
	exitMinutes := timefmt.TimeToMinutes(lastExit)
	isEarly := lastExit != "" && exitMinutes > 0 && exitMinutes < shiftEnd

	return analysis.DailyLog{
		Date:         date,
		FirstEntry:   firstEntry,
		LastExit:     lastExit,
		WorkDuration: workDuration,
		IsLate:       isLate,
		IsEarly:      isEarly,
		Status:       analysis.DeriveStatus(firstEntry != "", lastExit != "", isLate, isEarly),
	}
}

// Lexicographic comparison is valid because times are canonicalized to
// zero-padded HH:MM[:SS].
func minTime(times []string) string {
	out := ""
	for _, t := range times {
		if out == "" || t < out {
			out = t
		}
	}
	return out
}

func maxTime(times []string) string {
	out := ""
	for _, t := range times {
		if t > out {
			out = t
		}
	}
	return out
}
