package ingest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestParseAttendance_DiscoversHeaderAfterPreamble(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]interface{}{
		{"Отчет по событиям"},
		{},
		{"Сотрудник", "Дата", "Время", "Событие"},
		{"Иванов Иван", "13.01.2025", "08:55", "Вход"},
		{"Иванов Иван", "13.01.2025", "18:05", "Выход"},
	})

	events, company, err := ParseAttendance(r, "AVC_Групп_13.01.2025.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "AVC Групп", company)
	require.Len(t, events, 2)
	assert.Equal(t, analysis.RawEvent{
		EmployeeName: "Иванов Иван",
		Date:         "13.01.2025",
		Time:         "08:55",
		Event:        "Вход",
	}, events[0])
}

func TestParseAttendance_HeaderKeywordsAreSubstrings(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]interface{}{
		{"ФИО сотрудника", "Дата регистрации", "Время регистрации", "Событие (вход/выход)"},
		{"Иванов Иван", "13.01.2025", "08:55", "Вход"},
	})

	events, _, err := ParseAttendance(r, "report.xlsx")
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestParseAttendance_NoHeaderFails(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]interface{}{
		{"Какой-то текст"},
		{"Имя", "Когда"},
	})

	_, _, err := ParseAttendance(r, "report.xlsx")
	assert.ErrorIs(t, err, analysis.ErrHeaderNotFound)
}

func TestParseAttendance_FallsBackToDateCellForTime(t *testing.T) {
	t.Parallel()

	// Exports with a combined datetime column leave the time cell empty.
	r := workbook(t, [][]interface{}{
		{"Сотрудник", "Дата", "Время", "Событие"},
		{"Иванов Иван", "2025-01-13 08:55:00", "", "Вход"},
	})

	events, _, err := ParseAttendance(r, "report.xlsx")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, events[0].Date, events[0].Time)
}

func TestParseAttendance_NotAWorkbook(t *testing.T) {
	t.Parallel()

	_, _, err := ParseAttendance(bytes.NewReader([]byte("not an xlsx")), "report.xlsx")
	assert.Error(t, err)
}

func TestCompanyFromFilename(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		want     string
	}{
		{"AVC_Production_01.02.2025.xlsx", "AVC Production"},
		{"AVC Групп 13.01.2025.xlsx", "AVC Групп"},
		{`ТОО_Сервис_01.02.2025.xlsx`, "Сервис"},
		{"report.xlsx", UnknownCompany},
		{"13.01.2025.xlsx", UnknownCompany},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CompanyFromFilename(c.filename), "filename %q", c.filename)
	}
}

func TestParseDirectory_MultiTable(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]interface{}{
		{`Организация ТОО "AVC Групп"`},
		{"№", "Сотрудник", "Должность", "Дата приема", "Состояние"},
		{"1", "Иванов Иван", "Инженер", "13.01.2025", "Работа"},
		{"2", "Петров Петр", "Техник", "01.02.2024", "Работа"},
		{},
		{`Организация ТОО "AVC Production"`},
		{"№", "Сотрудник", "Должность", "Дата приема", "Состояние"},
		{"1", "Сидоров Сидор", "Директор", "05.06.2023", "Работа"},
	})

	entries, err := ParseDirectory(r)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, directory.Entry{
		EmployeeName: "Иванов Иван",
		Company:      `ТОО "AVC Групп"`,
		Position:     "Инженер",
		HireDate:     "13.01.2025",
		Status:       "Работа",
	}, entries[0])
	assert.Equal(t, `ТОО "AVC Production"`, entries[2].Company)
}

func TestParseDirectory_SkipsNumericNameRows(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]interface{}{
		{"Организация Сервис"},
		{"Сотрудник", "Должность"},
		{"123", "Инженер"}, // row counter leaked into the name column
		{"Иванов Иван", "Инженер"},
	})

	entries, err := ParseDirectory(r)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Иванов Иван", entries[0].EmployeeName)
}

func TestParseDirectory_MissingFieldsGetDash(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]interface{}{
		{"Организация Сервис"},
		{"Сотрудник", "Должность"},
		{"Иванов Иван", ""},
	})

	entries, err := ParseDirectory(r)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "–", entries[0].Position)
	assert.Equal(t, "–", entries[0].HireDate)
	assert.Equal(t, "–", entries[0].Status)
}

func TestParseDirectory_SkipsBlankRows(t *testing.T) {
	t.Parallel()

	// Real exports pad tables with visually empty rows; whitespace-only
	// cells count as empty too.
	r := workbook(t, [][]interface{}{
		{"Организация Сервис"},
		{"Сотрудник", "Должность"},
		{"Иванов Иван", "Инженер"},
		{"   ", ""},
		{},
		{"Петров Петр", "Техник"},
	})

	entries, err := ParseDirectory(r)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Иванов Иван", entries[0].EmployeeName)
	assert.Equal(t, "Петров Петр", entries[1].EmployeeName)
}

func TestParseDirectory_NoEntriesFails(t *testing.T) {
	t.Parallel()

	r := workbook(t, [][]interface{}{
		{"Организация Сервис"},
		{"Сотрудник", "Должность"},
	})

	_, err := ParseDirectory(r)
	assert.ErrorIs(t, err, directory.ErrNoUsableData)
}

func TestParseAttendance_ManyRows(t *testing.T) {
	t.Parallel()

	rows := [][]interface{}{
		{"Сотрудник", "Дата", "Время", "Событие"},
	}
	for i := 0; i < 50; i++ {
		rows = append(rows, []interface{}{
			fmt.Sprintf("Сотрудник %d", i), "13.01.2025", "09:00", "Вход",
		})
	}

	events, _, err := ParseAttendance(workbook(t, rows), "report.xlsx")
	require.NoError(t, err)
	assert.Len(t, events, 50)
}
