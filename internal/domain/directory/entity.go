package directory

// Entry is one reference roster record. It enriches identity resolution
// (assigning a company to attendance records) and filtering by position;
// no derived metrics live here.
type Entry struct {
	EmployeeName string `json:"employee_name"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	HireDate     string `json:"hire_date"`
	Status       string `json:"status"`
}

// SortKey is the closed set of roster list orderings.
type SortKey string

const (
	SortByEmployeeName SortKey = "employee_name"
	SortByCompany      SortKey = "company"
	SortByPosition     SortKey = "position"
	SortByHireDate     SortKey = "hire_date"
	SortByStatus       SortKey = "status"
)

// ParseSortKey maps a query value onto the closed key set. The empty
// string selects the default name ordering.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case "":
		return SortByEmployeeName, true
	case SortByEmployeeName, SortByCompany, SortByPosition, SortByHireDate, SortByStatus:
		return SortKey(s), true
	}
	return "", false
}
