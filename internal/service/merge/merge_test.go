package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/service/analytics"
)

func employee(name, company string, logs ...analysis.DailyLog) analysis.EmployeeAnalysis {
	return analytics.BuildEmployee(name, company, logs)
}

func workday(date string, late bool) analysis.DailyLog {
	status := analysis.StatusPerfect
	entry := "09:00"
	if late {
		status = analysis.StatusLate
		entry = "09:30"
	}
	return analysis.DailyLog{
		Date:         date,
		FirstEntry:   entry,
		LastExit:     "18:00",
		WorkDuration: "8ч 30м",
		IsLate:       late,
		Status:       status,
	}
}

func TestMerge_DisjointSetsUnion(t *testing.T) {
	t.Parallel()

	base := []analysis.EmployeeAnalysis{
		employee("Борисов Борис", "AVC Групп", workday("13.01.2025", false)),
	}
	incoming := []analysis.EmployeeAnalysis{
		employee("Абрамов Алексей", "AVC Production", workday("13.01.2025", true)),
	}

	merged := Merge(base, incoming)
	require.Len(t, merged, 2)
	assert.Equal(t, "Абрамов Алексей", merged[0].EmployeeName, "output is name-ordered")
	assert.Equal(t, "Борисов Борис", merged[1].EmployeeName)
}

func TestMerge_SameIdentityConcatenatesAndRecomputes(t *testing.T) {
	t.Parallel()

	base := []analysis.EmployeeAnalysis{
		employee("Иванов Иван", `ТОО "AVC Групп"`, workday("20.01.2025", true)),
	}
	incoming := []analysis.EmployeeAnalysis{
		employee("ИВАНОВ ИВАН", "AVC Групп", workday("13.01.2025", false)),
	}

	merged := Merge(base, incoming)
	require.Len(t, merged, 1, "identity matching ignores casing and legal-form prefix")

	emp := merged[0]
	require.Len(t, emp.DailyLogs, 2)
	assert.Equal(t, "13.01.2025", emp.DailyLogs[0].Date, "union is re-sorted chronologically")
	assert.Equal(t, "20.01.2025", emp.DailyLogs[1].Date)
	assert.Equal(t, 2, emp.DaysWorked)
	assert.Equal(t, 1, emp.TotalLate)
	assert.InDelta(t, 50.0, emp.ViolationRate, 0.001, "aggregates recomputed over the union")
}

func TestMerge_KeepsDuplicateDates(t *testing.T) {
	t.Parallel()

	base := []analysis.EmployeeAnalysis{
		employee("Иванов Иван", "AVC Групп", workday("13.01.2025", false)),
	}
	incoming := []analysis.EmployeeAnalysis{
		employee("Иванов Иван", "AVC Групп", workday("13.01.2025", true)),
	}

	merged := Merge(base, incoming)
	require.Len(t, merged, 1)
	assert.Len(t, merged[0].DailyLogs, 2,
		"same-date logs from both sources are kept, not deduplicated")
}

func TestMerge_IsCommutativeUpToOrder(t *testing.T) {
	t.Parallel()

	a := []analysis.EmployeeAnalysis{
		employee("Иванов Иван", "AVC Групп", workday("13.01.2025", false)),
		employee("Петров Петр", "AVC Production", workday("14.01.2025", true)),
	}
	b := []analysis.EmployeeAnalysis{
		employee("Иванов Иван", "AVC Групп", workday("20.01.2025", true)),
	}

	ab := Merge(a, b)
	ba := Merge(b, a)

	require.Len(t, ab, 2)
	require.Len(t, ba, 2)
	for i := range ab {
		assert.Equal(t, ab[i].EmployeeName, ba[i].EmployeeName)
		assert.Equal(t, ab[i].DaysWorked, ba[i].DaysWorked)
		assert.Equal(t, ab[i].TotalLate, ba[i].TotalLate)
		assert.Equal(t, ab[i].ViolationRate, ba[i].ViolationRate)
	}
}

func TestMerge_EmptyBase(t *testing.T) {
	t.Parallel()

	incoming := []analysis.EmployeeAnalysis{
		employee("Иванов Иван", "AVC Групп", workday("13.01.2025", false)),
	}

	merged := Merge(nil, incoming)
	require.Len(t, merged, 1)
	assert.Equal(t, "Иванов Иван", merged[0].EmployeeName)
}

func TestMerge_NormalizesDisplayCompany(t *testing.T) {
	t.Parallel()

	incoming := []analysis.EmployeeAnalysis{
		employee("Иванов Иван", `ТОО "AVC Групп"`, workday("13.01.2025", false)),
	}

	merged := Merge(nil, incoming)
	require.Len(t, merged, 1)
	assert.Equal(t, "AVC Групп", merged[0].Company)
}
