package directory

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	"github.com/tabelio/attendance-backend-go/internal/service/snapshot"
)

func seedRoster() []directory.Entry {
	return []directory.Entry{
		{EmployeeName: "Иванов Иван", Company: `ТОО "AVC Групп"`, Position: "Инженер", HireDate: "13.01.2025", Status: "Работа"},
		{EmployeeName: "Петров Петр", Company: `ТОО "AVC Production"`, Position: "Техник", HireDate: "01.02.2024", Status: "Работа"},
		{EmployeeName: "Сидоров Сидор", Company: `ТОО "AVC Групп"`, Position: "Техник", HireDate: "05.06.2023", Status: "Отпуск основной"},
	}
}

func newTestService() (directory.DirectoryService, *snapshot.Store) {
	store := snapshot.New(analysis.Shift{Start: "09:00", End: "18:00"}, seedRoster())
	return NewDirectoryService(store), store
}

func directoryWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
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

func TestUploadDirectory_ReplacesRoster(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newTestService()

	r := directoryWorkbook(t, [][]interface{}{
		{"Организация Новая Компания"},
		{"Сотрудник", "Должность"},
		{"Новиков Новик", "Директор"},
	})

	count, err := svc.UploadDirectory(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	roster := store.Roster()
	require.Len(t, roster, 1, "upload replaces the roster wholesale")
	assert.Equal(t, "Новиков Новик", roster[0].EmployeeName)
}

func TestUploadDirectory_FailedParseKeepsOldRoster(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newTestService()

	_, err := svc.UploadDirectory(ctx, bytes.NewReader([]byte("not an xlsx")))
	require.Error(t, err)
	assert.Len(t, store.Roster(), len(seedRoster()))
}

func TestList_FiltersAndSorts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	entries, err := svc.List(ctx, `ТОО "AVC Групп"`, "", directory.SortByEmployeeName, false)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Иванов Иван", entries[0].EmployeeName)

	entries, err = svc.List(ctx, "", "Техник", directory.SortByHireDate, true)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Петров Петр", entries[0].EmployeeName, "newest hire first descending")
}

func TestCompaniesAndPositions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	companies := svc.Companies(ctx)
	assert.Equal(t, []string{`ТОО "AVC Production"`, `ТОО "AVC Групп"`}, companies)

	positions := svc.Positions(ctx, "")
	assert.Len(t, positions, 2)

	positions = svc.Positions(ctx, `ТОО "AVC Production"`)
	assert.Equal(t, []string{"Техник"}, positions)
}
