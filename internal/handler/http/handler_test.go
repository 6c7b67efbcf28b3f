package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tabelio/attendance-backend-go/internal/config"
	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	analysisService "github.com/tabelio/attendance-backend-go/internal/service/analysis"
	directoryService "github.com/tabelio/attendance-backend-go/internal/service/directory"
	"github.com/tabelio/attendance-backend-go/internal/service/snapshot"
)

func testRouter() http.Handler {
	cfg := &config.Config{
		App:   config.AppConfig{Env: "test"},
		Shift: config.ShiftConfig{Start: "09:00", End: "18:00"},
		HTTP:  config.HTTPConfig{UploadMaxBytes: 10 << 20},
	}

	store := snapshot.New(
		analysis.Shift{Start: cfg.Shift.Start, End: cfg.Shift.End},
		[]directory.Entry{
			{EmployeeName: "Иванов Иван", Company: `ТОО "AVC Групп"`, Position: "Инженер", HireDate: "13.01.2025", Status: "Работа"},
		},
	)

	analysisSvc := analysisService.NewAnalysisService(store)
	directorySvc := directoryService.NewDirectoryService(store)

	return NewRouter(cfg,
		NewAnalysisHandler(analysisSvc, cfg.HTTP.UploadMaxBytes),
		NewDirectoryHandler(directorySvc, cfg.HTTP.UploadMaxBytes),
	)
}

func attendanceUpload(t *testing.T, rows [][]interface{}) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	all := append([][]interface{}{{"Сотрудник", "Дата", "Время", "Событие"}}, rows...)
	for i, row := range all {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var xlsx bytes.Buffer
	require.NoError(t, f.Write(&xlsx))
	require.NoError(t, f.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "AVC_Групп_13.01.2025.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestUploadEndpoint(t *testing.T) {
	t.Parallel()
	router := testRouter()

	body, contentType := attendanceUpload(t, [][]interface{}{
		{"Иванов Иван", "13.01.2025", "08:55", "Вход"},
		{"Иванов Иван", "13.01.2025", "18:05", "Выход"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	payload := decodeResponse(t, rec)
	assert.Equal(t, true, payload["success"])

	data := payload["data"].(map[string]interface{})
	assert.NotEmpty(t, data["batch_id"])
	assert.Equal(t, float64(1), data["employees"])
}

func TestUploadEndpoint_MissingFile(t *testing.T) {
	t.Parallel()
	router := testRouter()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadEndpoint_HeaderlessFileIs422(t *testing.T) {
	t.Parallel()
	router := testRouter()

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "Просто текст"))
	var xlsx bytes.Buffer
	require.NoError(t, f.Write(&xlsx))
	require.NoError(t, f.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "report.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAnalysisEndpoint_QueryValidation(t *testing.T) {
	t.Parallel()
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/analysis?from=2025-01-13", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/analysis?sort=bogus", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/analysis?dir=sideways", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	t.Parallel()
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeResponse(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "09:00", data["start"])
	assert.Equal(t, "18:00", data["end"])

	update := bytes.NewBufferString(`{"start":"08:00","end":"17:00"}`)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/settings", update)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	bad := bytes.NewBufferString(`{"start":"25:00","end":"17:00"}`)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/settings", bad)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDirectoryEndpoints(t *testing.T) {
	t.Parallel()
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/directory/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	entries := decodeResponse(t, rec)["data"].([]interface{})
	require.Len(t, entries, 1)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/directory/companies", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestResetEndpoint(t *testing.T) {
	t.Parallel()
	router := testRouter()

	body, contentType := attendanceUpload(t, [][]interface{}{
		{"Иванов Иван", "13.01.2025", "08:55", "Вход"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/attendance/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/analysis", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeResponse(t, rec)
	assert.Empty(t, payload["data"], "reset clears all loaded analyses")
}
