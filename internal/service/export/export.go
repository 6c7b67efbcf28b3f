// Package export renders analysis results into an xlsx report.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/pkg/normalize"
)

const (
	summarySheet = "Сводка"
	detailSheet  = "Детализация"
	companySheet = "Компании"
)

// WriteReport builds a three-sheet workbook: a per-employee summary, a
// per-day detail log, and a company rollup. The caller owns the returned
// file and is responsible for writing it out.
func WriteReport(analyses []analysis.EmployeeAnalysis, overall analysis.OverallStats, companies []analysis.CompanyStats) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetSheetName(f.GetSheetName(0), summarySheet)
	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(companySheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeSummary(f, analyses, overall); err != nil {
		return nil, err
	}
	if err := writeDetail(f, analyses); err != nil {
		return nil, err
	}
	if err := writeCompanies(f, companies); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSummary(f *excelize.File, analyses []analysis.EmployeeAnalysis, overall analysis.OverallStats) error {
	headers := []interface{}{
		"Сотрудник", "Компания", "Рабочих дней", "Опозданий",
		"Ранних уходов", "Неполных дней", "% нарушений", "Средняя длительность",
	}
	if err := writeRow(f, summarySheet, 1, headers); err != nil {
		return err
	}
	row := 2
	for _, a := range analyses {
		values := []interface{}{
			a.EmployeeName, a.Company, a.DaysWorked, a.TotalLate,
			a.TotalEarly, a.IncompleteDays,
			fmt.Sprintf("%.1f%%", a.ViolationRate), a.AverageWorkDuration,
		}
		if err := writeRow(f, summarySheet, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	totals := [][]interface{}{
		{"Всего сотрудников", overall.TotalEmployees},
		{"Всего опозданий", overall.TotalLates},
		{"Всего ранних уходов", overall.TotalEarlies},
		{"Средний % нарушений", fmt.Sprintf("%.1f%%", overall.AverageViolationRate)},
		{"Средняя длительность дня", overall.AverageWorkDuration},
	}
	for _, t := range totals {
		if err := writeRow(f, summarySheet, row, t); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeDetail(f *excelize.File, analyses []analysis.EmployeeAnalysis) error {
	headers := []interface{}{
		"Сотрудник", "Компания", "Дата", "Приход", "Уход",
		"Длительность", "Статус",
	}
	if err := writeRow(f, detailSheet, 1, headers); err != nil {
		return err
	}
	row := 2
	for _, a := range analyses {
		// The detail sheet is dense; abbreviated names keep it readable.
		name := normalize.ShortName(a.EmployeeName)
		for _, log := range a.DailyLogs {
			values := []interface{}{
				name, a.Company, log.Date,
				orDash(log.FirstEntry), orDash(log.LastExit),
				orDash(log.WorkDuration), string(log.Status),
			}
			if err := writeRow(f, detailSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeCompanies(f *excelize.File, companies []analysis.CompanyStats) error {
	headers := []interface{}{
		"Компания", "Сотрудников", "Опозданий", "Ранних уходов", "% нарушений",
	}
	if err := writeRow(f, companySheet, 1, headers); err != nil {
		return err
	}
	for i, c := range companies {
		values := []interface{}{
			c.CompanyName, c.EmployeeCount, c.TotalLates, c.TotalEarlies,
			fmt.Sprintf("%.1f%%", c.AverageViolationRate),
		}
		if err := writeRow(f, companySheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell: %w", err)
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}
