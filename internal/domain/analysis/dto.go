package analysis

import (
	"github.com/tabelio/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ANALYSIS DTOs
// ========================================

// UploadResult reports one processed attendance upload. SkippedRows makes
// the row-level drop policy observable instead of silent.
type UploadResult struct {
	BatchID     string `json:"batch_id"`
	Employees   int    `json:"employees"`
	SkippedRows int    `json:"skipped_rows"`
	Company     string `json:"company"`
}

// FilterOptions narrows an analysis set before aggregates are recomputed.
// Dates are canonical DD.MM.YYYY; empty fields mean "no constraint".
type FilterOptions struct {
	DateFrom string
	DateTo   string
	Company  string
	Position string
}

func (f FilterOptions) Validate() error {
	var errs validator.ValidationErrors

	if f.DateFrom != "" {
		if _, ok := validator.IsValidDate(f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a DD.MM.YYYY date",
			})
		}
	}
	if f.DateTo != "" {
		if _, ok := validator.IsValidDate(f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a DD.MM.YYYY date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateShiftRequest replaces the shift boundaries used for
// classification. Already-loaded analyses keep their classification; a
// re-upload applies the new boundaries.
type UpdateShiftRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClock(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a HH:MM clock time",
		})
	}
	if !validator.IsValidClock(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a HH:MM clock time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeSortKey is the closed set of employee list orderings. Each key
// is bound to a typed comparator in the analytics service; there is no
// runtime field lookup.
type EmployeeSortKey string

const (
	SortByEmployeeName  EmployeeSortKey = "employee_name"
	SortByTotalLate     EmployeeSortKey = "total_late"
	SortByTotalEarly    EmployeeSortKey = "total_early"
	SortByViolationRate EmployeeSortKey = "violation_rate"
	SortByAvgDuration   EmployeeSortKey = "average_work_duration"
)

// ParseEmployeeSortKey maps a query value onto the closed key set. The
// empty string selects the default name ordering.
func ParseEmployeeSortKey(s string) (EmployeeSortKey, bool) {
	switch EmployeeSortKey(s) {
	case "":
		return SortByEmployeeName, true
	case SortByEmployeeName, SortByTotalLate, SortByTotalEarly, SortByViolationRate, SortByAvgDuration:
		return EmployeeSortKey(s), true
	}
	return "", false
}
