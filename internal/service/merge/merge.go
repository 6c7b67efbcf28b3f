// Package merge consolidates independently computed analysis sets into
// one, keyed by normalized (company, employee) identity.
package merge

import (
	"sort"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/pkg/normalize"
	"github.com/tabelio/attendance-backend-go/internal/pkg/timefmt"
	"github.com/tabelio/attendance-backend-go/internal/service/analytics"
)

func identityKey(emp analysis.EmployeeAnalysis) string {
	return normalize.CompanyKey(emp.Company) + "|" + normalize.EmployeeName(emp.EmployeeName)
}

// Merge combines a base analysis set with an incoming one (typically a new
// upload folded into existing state). Records sharing an identity have
// their daily logs concatenated and re-sorted chronologically, and every
// aggregate is recomputed from scratch over the union; incremental delta
// merging would drift. Same-date logs arriving from both sources are both
// kept. Output is sorted by display name, locale-aware.
func Merge(base, incoming []analysis.EmployeeAnalysis) []analysis.EmployeeAnalysis {
	byKey := make(map[string]analysis.EmployeeAnalysis)
	order := make([]string, 0, len(base)+len(incoming))

	addOrMerge := func(emp analysis.EmployeeAnalysis) {
		key := identityKey(emp)
		existing, ok := byKey[key]
		if !ok {
			record := emp
			record.Company = normalize.Company(emp.Company)
			record.DailyLogs = append([]analysis.DailyLog(nil), emp.DailyLogs...)
			byKey[key] = record
			order = append(order, key)
			return
		}

		logs := make([]analysis.DailyLog, 0, len(existing.DailyLogs)+len(emp.DailyLogs))
		logs = append(logs, existing.DailyLogs...)
		logs = append(logs, emp.DailyLogs...)
		sort.SliceStable(logs, func(i, j int) bool {
			return timefmt.DateSortKey(logs[i].Date) < timefmt.DateSortKey(logs[j].Date)
		})

		byKey[key] = analytics.BuildEmployee(existing.EmployeeName, normalize.Company(existing.Company), logs)
	}

	for _, emp := range base {
		addOrMerge(emp)
	}
	for _, emp := range incoming {
		addOrMerge(emp)
	}

	out := make([]analysis.EmployeeAnalysis, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	collator := normalize.Collator()
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].EmployeeName, out[j].EmployeeName) < 0
	})
	return out
}
