// Package ingest reads uploaded spreadsheet exports into the engine's raw
// structures. Header locations are discovered, not assumed: real exports
// carry preamble rows before the table starts.
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	"github.com/tabelio/attendance-backend-go/internal/pkg/normalize"
	"github.com/tabelio/attendance-backend-go/internal/pkg/timefmt"
)

const (
	// headerScanRows bounds the preamble search.
	headerScanRows = 20

	// UnknownCompany is assigned when neither the roster nor the file name
	// resolves a company label.
	UnknownCompany = "Неизвестная компания"
)

var attendanceKeywords = []string{"сотрудник", "дата", "время", "событие"}

var companyFromFileRe = regexp.MustCompile(`^(.*?)[_\s]\d{2}\.\d{2}\.\d{4}`)

// ParseAttendance reads an attendance event-log export. It returns the raw
// swipe rows plus the company label inferred from the file name. The only
// fatal condition here is a missing header row; malformed data rows are
// passed through for the reconciler to count and skip.
func ParseAttendance(r io.Reader, filename string) ([]analysis.RawEvent, string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sheet: %w", err)
	}

	headerIdx, headers := findHeaderRow(rows, attendanceKeywords)
	if headerIdx == -1 {
		return nil, "", analysis.ErrHeaderNotFound
	}

	nameIdx := findColumn(headers, "сотрудник", "фио")
	dateIdx := findColumn(headers, "дата")
	timeIdx := findColumn(headers, "время")
	eventIdx := findColumn(headers, "событие")

	events := make([]analysis.RawEvent, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		timeCell := cell(row, timeIdx)
		if timeCell == "" {
			// Some exports pack date and time into one datetime cell.
			timeCell = cell(row, dateIdx)
		}
		events = append(events, analysis.RawEvent{
			EmployeeName: cell(row, nameIdx),
			Date:         cell(row, dateIdx),
			Time:         timeCell,
			Event:        cell(row, eventIdx),
		})
	}

	return events, CompanyFromFilename(filename), nil
}

// CompanyFromFilename extracts a company label from export names like
// "AVC_Production_01.02.2025.xlsx". Names without the _DD.MM.YYYY suffix
// map to UnknownCompany.
func CompanyFromFilename(filename string) string {
	base := filepath.Base(filename)
	m := companyFromFileRe.FindStringSubmatch(base)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return UnknownCompany
	}
	return normalize.Company(strings.ReplaceAll(m[1], "_", " "))
}

// ParseDirectory reads a roster export. Directory files hold one table per
// company, each introduced by an "Организация <name>" row followed by its
// own header row.
func ParseDirectory(r io.Reader) ([]directory.Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var entries []directory.Entry
	currentCompany := UnknownCompany
	headerFound := false
	var nameIdx, positionIdx, hireDateIdx, statusIdx int

	for _, row := range rows {
		if rowEmpty(row) {
			continue
		}
		firstCell := cell(row, 0)

		if strings.HasPrefix(strings.ToLower(firstCell), "организация") {
			company := strings.TrimSpace(companyLabelRe.ReplaceAllString(firstCell, ""))
			if company == "" {
				company = cell(row, 1)
			}
			if company != "" {
				currentCompany = company
			}
			headerFound = false
			continue
		}

		if !headerFound {
			headers := lowerCells(row)
			if findColumn(headers, "сотрудник", "фио", "должность") != -1 {
				nameIdx = findColumn(headers, "сотрудник", "фио")
				positionIdx = findColumn(headers, "должность")
				hireDateIdx = findColumn(headers, "дата приема")
				statusIdx = findColumn(headers, "состояние")
				if nameIdx != -1 && positionIdx != -1 {
					headerFound = true
				}
				continue
			}
			continue
		}

		name := cell(row, nameIdx)
		// Numeric first cells are row counters, not names.
		if name == "" || numericRe.MatchString(name) {
			continue
		}
		hireDate := timefmt.CanonicalDate(cell(row, hireDateIdx))
		if hireDate == "" {
			hireDate = "–"
		}
		entries = append(entries, directory.Entry{
			EmployeeName: name,
			Company:      currentCompany,
			Position:     cellOrDash(row, positionIdx),
			HireDate:     hireDate,
			Status:       cellOrDash(row, statusIdx),
		})
	}

	if len(entries) == 0 {
		return nil, directory.ErrNoUsableData
	}
	return entries, nil
}

var (
	companyLabelRe = regexp.MustCompile(`(?i)^организация`)
	numericRe      = regexp.MustCompile(`^\d+`)
)

func findHeaderRow(rows [][]string, keywords []string) (int, []string) {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		headers := lowerCells(rows[i])
		if hasAllKeywords(headers, keywords) {
			return i, headers
		}
	}
	return -1, nil
}

func hasAllKeywords(cells, keywords []string) bool {
	for _, keyword := range keywords {
		found := false
		for _, c := range cells {
			if strings.Contains(c, keyword) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func findColumn(headers []string, keywords ...string) int {
	for i, h := range headers {
		for _, keyword := range keywords {
			if strings.Contains(h, keyword) {
				return i
			}
		}
	}
	return -1
}

func lowerCells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellOrDash(row []string, idx int) string {
	if v := cell(row, idx); v != "" {
		return v
	}
	return "–"
}
