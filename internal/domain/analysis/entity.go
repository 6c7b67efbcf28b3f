package analysis

// DayStatus classifies one employee's calendar day against the configured
// shift boundaries.
type DayStatus string

const (
	StatusPerfect      DayStatus = "perfect"
	StatusLate         DayStatus = "late"
	StatusEarly        DayStatus = "early"
	StatusLateAndEarly DayStatus = "late_and_early"
	StatusIncomplete   DayStatus = "incomplete"
)

// DeriveStatus is the single source of truth for day classification.
// A missing boundary forces incomplete regardless of the violation flags.
func DeriveStatus(hasEntry, hasExit, isLate, isEarly bool) DayStatus {
	if !hasEntry || !hasExit {
		return StatusIncomplete
	}
	switch {
	case isLate && isEarly:
		return StatusLateAndEarly
	case isLate:
		return StatusLate
	case isEarly:
		return StatusEarly
	default:
		return StatusPerfect
	}
}

// RawEvent is one swipe row as read from an uploaded export. It is
// ephemeral: produced by the ingest collaborator, consumed by the
// reconciler, never persisted.
type RawEvent struct {
	EmployeeName string
	Date         string
	Time         string
	Event        string
}

// Shift holds the configured work-day boundaries in HH:MM form.
type Shift struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DailyLog is one employee's one calendar day. FirstEntry, LastExit and
// WorkDuration are empty when absent; WorkDuration is present only when
// both boundaries exist.
type DailyLog struct {
	Date         string    `json:"date"`
	FirstEntry   string    `json:"first_entry,omitempty"`
	LastExit     string    `json:"last_exit,omitempty"`
	WorkDuration string    `json:"work_duration,omitempty"`
	IsLate       bool      `json:"is_late"`
	IsEarly      bool      `json:"is_early"`
	Status       DayStatus `json:"status"`
}

// EmployeeAnalysis is one employee's full reconciled record. Every
// aggregate field is a deterministic fold over DailyLogs; records are
// replaced wholesale, never mutated field by field.
type EmployeeAnalysis struct {
	EmployeeName        string     `json:"employee_name"`
	Company             string     `json:"company"`
	TotalLate           int        `json:"total_late"`
	TotalEarly          int        `json:"total_early"`
	DaysWorked          int        `json:"days_worked"`
	IncompleteDays      int        `json:"incomplete_days"`
	TotalWorkHours      string     `json:"total_work_hours"`
	AverageWorkDuration string     `json:"average_work_duration"`
	ViolationRate       float64    `json:"violation_rate"`
	DailyLogs           []DailyLog `json:"daily_logs"`
}

// TrendPoint is one calendar date carrying at least one violation. Label
// is the truncated DD.MM form used on charts; dates colliding across
// years share a label, a known limitation of the display format.
type TrendPoint struct {
	Label      string `json:"label"`
	Date       string `json:"date"`
	Violations int    `json:"violations"`
}

// WeekdayPoint is one dense weekday bucket, Monday first.
type WeekdayPoint struct {
	Label   string `json:"label"`
	Lates   int    `json:"lates"`
	Earlies int    `json:"earlies"`
}

// DurationBin is one bucket of the work-duration histogram. Bins cover the
// half-open hour intervals [0,2) [2,4) [4,6) [6,8) [8,10) [10,∞).
type DurationBin struct {
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// OverallStats is the fleet-wide rollup over every employee's daily logs.
// UnparsedDates counts log dates the weekday series had to skip.
type OverallStats struct {
	TotalEmployees           int            `json:"total_employees"`
	TotalLates               int            `json:"total_lates"`
	TotalEarlies             int            `json:"total_earlies"`
	AverageViolationRate     float64        `json:"average_violation_rate"`
	AverageWorkDuration      string         `json:"average_work_duration"`
	DailyViolationsTrend     []TrendPoint   `json:"daily_violations_trend"`
	ViolationsByWeekday      []WeekdayPoint `json:"violations_by_weekday"`
	WorkDurationDistribution []DurationBin  `json:"work_duration_distribution"`
	UnparsedDates            int            `json:"unparsed_dates,omitempty"`
}

// CompanyStats is the per-company rollup.
type CompanyStats struct {
	CompanyName          string  `json:"company_name"`
	EmployeeCount        int     `json:"employee_count"`
	TotalLates           int     `json:"total_lates"`
	TotalEarlies         int     `json:"total_earlies"`
	AverageViolationRate float64 `json:"average_violation_rate"`
	AverageWorkDuration  string  `json:"average_work_duration"`
}
