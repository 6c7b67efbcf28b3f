// Package analytics derives per-employee, per-company and fleet-wide
// metrics from classified daily records. Every function is a pure fold
// over its inputs: same inputs, same outputs, no hidden state.
package analytics

import (
	"sort"
	"strings"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	"github.com/tabelio/attendance-backend-go/internal/pkg/normalize"
	"github.com/tabelio/attendance-backend-go/internal/pkg/timefmt"
)

// BuildEmployee folds one employee's daily logs into a full analysis
// record. Recomputing over the same logs always yields identical
// aggregates; the merge engine relies on this to rebuild records from a
// unioned log without drift.
func BuildEmployee(name, company string, logs []analysis.DailyLog) analysis.EmployeeAnalysis {
	totalLate := 0
	totalEarly := 0
	incompleteDays := 0
	totalWorkMinutes := 0

	for _, log := range logs {
		if log.IsLate {
			totalLate++
		}
		if log.IsEarly {
			totalEarly++
		}
		if log.Status == analysis.StatusIncomplete {
			incompleteDays++
		}
		if minutes := timefmt.ParseDurationMinutes(log.WorkDuration); minutes != timefmt.MissingDuration {
			totalWorkMinutes += minutes
		}
	}

	daysWorked := len(logs) - incompleteDays
	averageWorkMinutes := 0.0
	violationRate := 0.0
	if daysWorked > 0 {
		averageWorkMinutes = float64(totalWorkMinutes) / float64(daysWorked)
		violationRate = float64(totalLate+totalEarly) / float64(daysWorked) * 100
	}

	return analysis.EmployeeAnalysis{
		EmployeeName:        name,
		Company:             company,
		TotalLate:           totalLate,
		TotalEarly:          totalEarly,
		DaysWorked:          daysWorked,
		IncompleteDays:      incompleteDays,
		TotalWorkHours:      timefmt.FormatDuration(float64(totalWorkMinutes)),
		AverageWorkDuration: timefmt.FormatDuration(averageWorkMinutes),
		ViolationRate:       violationRate,
		DailyLogs:           logs,
	}
}

var weekdayLabels = [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

var durationBinLabels = [6]string{"0-2ч", "2-4ч", "4-6ч", "6-8ч", "8-10ч", "10ч+"}

// Overall rolls the whole analysis set up into fleet-wide statistics in a
// single pass over every daily log. Dates the weekday series cannot parse
// are skipped for that one entry and counted in UnparsedDates.
func Overall(list []analysis.EmployeeAnalysis) analysis.OverallStats {
	stats := analysis.OverallStats{
		DailyViolationsTrend:     []analysis.TrendPoint{},
		ViolationsByWeekday:      make([]analysis.WeekdayPoint, 7),
		WorkDurationDistribution: make([]analysis.DurationBin, 6),
	}
	for i := range stats.ViolationsByWeekday {
		stats.ViolationsByWeekday[i].Label = weekdayLabels[i]
	}
	for i := range stats.WorkDurationDistribution {
		stats.WorkDurationDistribution[i].Label = durationBinLabels[i]
	}
	if len(list) == 0 {
		stats.AverageWorkDuration = timefmt.FormatDuration(0)
		return stats
	}

	stats.TotalEmployees = len(list)

	violationRateSum := 0.0
	totalWorkMinutes := 0
	totalDaysWorked := 0
	violationsByDate := make(map[string]int)

	for _, emp := range list {
		stats.TotalLates += emp.TotalLate
		stats.TotalEarlies += emp.TotalEarly
		violationRateSum += emp.ViolationRate
		totalDaysWorked += emp.DaysWorked

		for _, log := range emp.DailyLogs {
			if minutes := timefmt.ParseDurationMinutes(log.WorkDuration); minutes != timefmt.MissingDuration {
				totalWorkMinutes += minutes
				binDuration(&stats, minutes)
			}
			if log.IsLate || log.IsEarly {
				violationsByDate[log.Date]++
			}
			if day, ok := timefmt.Weekday(log.Date); ok {
				if log.IsLate {
					stats.ViolationsByWeekday[day].Lates++
				}
				if log.IsEarly {
					stats.ViolationsByWeekday[day].Earlies++
				}
			} else {
				stats.UnparsedDates++
			}
		}
	}

	stats.AverageViolationRate = violationRateSum / float64(len(list))
	if totalDaysWorked > 0 {
		stats.AverageWorkDuration = timefmt.FormatDuration(float64(totalWorkMinutes) / float64(totalDaysWorked))
	} else {
		stats.AverageWorkDuration = timefmt.FormatDuration(0)
	}

	for date, count := range violationsByDate {
		// DD.MM display label; dates colliding across years share it.
		label := date
		if len(label) > 5 {
			label = label[:5]
		}
		stats.DailyViolationsTrend = append(stats.DailyViolationsTrend, analysis.TrendPoint{
			Label:      label,
			Date:       date,
			Violations: count,
		})
	}
	sort.Slice(stats.DailyViolationsTrend, func(i, j int) bool {
		return timefmt.DateSortKey(stats.DailyViolationsTrend[i].Date) < timefmt.DateSortKey(stats.DailyViolationsTrend[j].Date)
	})

	return stats
}

// Half-open hour intervals [0,2) [2,4) [4,6) [6,8) [8,10) [10,∞).
func binDuration(stats *analysis.OverallStats, minutes int) {
	hours := float64(minutes) / 60
	idx := int(hours / 2)
	if idx > 5 {
		idx = 5
	}
	if idx < 0 {
		return
	}
	stats.WorkDurationDistribution[idx].Days++
}

// Companies rolls the analysis set up per company, ordered by company
// name.
func Companies(list []analysis.EmployeeAnalysis) []analysis.CompanyStats {
	type accumulator struct {
		employeeCount    int
		totalLates       int
		totalEarlies     int
		violationRateSum float64
		totalWorkMinutes int
		totalDaysWorked  int
	}

	byCompany := make(map[string]*accumulator)
	for _, emp := range list {
		acc, ok := byCompany[emp.Company]
		if !ok {
			acc = &accumulator{}
			byCompany[emp.Company] = acc
		}
		acc.employeeCount++
		acc.totalLates += emp.TotalLate
		acc.totalEarlies += emp.TotalEarly
		acc.violationRateSum += emp.ViolationRate
		acc.totalDaysWorked += emp.DaysWorked
		for _, log := range emp.DailyLogs {
			if minutes := timefmt.ParseDurationMinutes(log.WorkDuration); minutes != timefmt.MissingDuration {
				acc.totalWorkMinutes += minutes
			}
		}
	}

	out := make([]analysis.CompanyStats, 0, len(byCompany))
	for company, acc := range byCompany {
		averageRate := 0.0
		if acc.employeeCount > 0 {
			averageRate = acc.violationRateSum / float64(acc.employeeCount)
		}
		averageMinutes := 0.0
		if acc.totalDaysWorked > 0 {
			averageMinutes = float64(acc.totalWorkMinutes) / float64(acc.totalDaysWorked)
		}
		out = append(out, analysis.CompanyStats{
			CompanyName:          company,
			EmployeeCount:        acc.employeeCount,
			TotalLates:           acc.totalLates,
			TotalEarlies:         acc.totalEarlies,
			AverageViolationRate: averageRate,
			AverageWorkDuration:  timefmt.FormatDuration(averageMinutes),
		})
	}

	collator := normalize.Collator()
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].CompanyName, out[j].CompanyName) < 0
	})
	return out
}

// Filter narrows an analysis set to a date range, a company and a
// roster-matched position, recomputing every aggregate over the surviving
// logs. Employees left without logs are dropped. The pipeline is
// referentially transparent: it never mutates its input.
func Filter(list []analysis.EmployeeAnalysis, opts analysis.FilterOptions, roster []directory.Entry) []analysis.EmployeeAnalysis {
	fromKey := int64(0)
	toKey := int64(0)
	if opts.DateFrom != "" {
		fromKey = timefmt.DateSortKey(opts.DateFrom)
	}
	if opts.DateTo != "" {
		toKey = timefmt.DateSortKey(opts.DateTo)
	}

	var nameToPosition map[string]string
	if opts.Position != "" {
		nameToPosition = make(map[string]string, len(roster))
		for _, entry := range roster {
			nameToPosition[normalize.EmployeeName(entry.EmployeeName)] = entry.Position
		}
	}

	out := make([]analysis.EmployeeAnalysis, 0, len(list))
	for _, emp := range list {
		logs := emp.DailyLogs
		if fromKey != 0 || toKey != 0 {
			logs = make([]analysis.DailyLog, 0, len(emp.DailyLogs))
			for _, log := range emp.DailyLogs {
				key := timefmt.DateSortKey(log.Date)
				if fromKey != 0 && key < fromKey {
					continue
				}
				if toKey != 0 && key > toKey {
					continue
				}
				logs = append(logs, log)
			}
		}
		if len(logs) == 0 {
			continue
		}
		if opts.Company != "" && strings.TrimSpace(emp.Company) != strings.TrimSpace(opts.Company) {
			continue
		}
		if opts.Position != "" {
			position := nameToPosition[normalize.EmployeeName(emp.EmployeeName)]
			if strings.TrimSpace(position) != strings.TrimSpace(opts.Position) {
				continue
			}
		}
		out = append(out, BuildEmployee(emp.EmployeeName, emp.Company, logs))
	}
	return out
}

// SortEmployees orders the list in place by one of the closed sort keys.
// Each key is bound to a typed comparator; missing durations sort after
// every real value ascending and before them descending.
func SortEmployees(list []analysis.EmployeeAnalysis, key analysis.EmployeeSortKey, desc bool) {
	var less func(a, b analysis.EmployeeAnalysis) bool
	switch key {
	case analysis.SortByTotalLate:
		less = func(a, b analysis.EmployeeAnalysis) bool { return a.TotalLate < b.TotalLate }
	case analysis.SortByTotalEarly:
		less = func(a, b analysis.EmployeeAnalysis) bool { return a.TotalEarly < b.TotalEarly }
	case analysis.SortByViolationRate:
		less = func(a, b analysis.EmployeeAnalysis) bool { return a.ViolationRate < b.ViolationRate }
	case analysis.SortByAvgDuration:
		less = func(a, b analysis.EmployeeAnalysis) bool {
			return timefmt.DurationSortValue(a.AverageWorkDuration) < timefmt.DurationSortValue(b.AverageWorkDuration)
		}
	default:
		collator := normalize.Collator()
		less = func(a, b analysis.EmployeeAnalysis) bool {
			return collator.CompareString(a.EmployeeName, b.EmployeeName) < 0
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

// SortDirectory orders roster entries in place by one of the closed sort
// keys.
func SortDirectory(entries []directory.Entry, key directory.SortKey, desc bool) {
	collator := normalize.Collator()
	var less func(a, b directory.Entry) bool
	switch key {
	case directory.SortByCompany:
		less = func(a, b directory.Entry) bool { return collator.CompareString(a.Company, b.Company) < 0 }
	case directory.SortByPosition:
		less = func(a, b directory.Entry) bool { return collator.CompareString(a.Position, b.Position) < 0 }
	case directory.SortByHireDate:
		less = func(a, b directory.Entry) bool {
			return timefmt.DateSortKey(a.HireDate) < timefmt.DateSortKey(b.HireDate)
		}
	case directory.SortByStatus:
		less = func(a, b directory.Entry) bool { return collator.CompareString(a.Status, b.Status) < 0 }
	default:
		less = func(a, b directory.Entry) bool {
			return collator.CompareString(a.EmployeeName, b.EmployeeName) < 0
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}
