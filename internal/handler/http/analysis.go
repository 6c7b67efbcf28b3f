package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/handler/http/response"
)

type AnalysisHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Overall(w http.ResponseWriter, r *http.Request)
	Companies(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
}

type analysisHandlerImpl struct {
	analysisService analysis.AnalysisService
	uploadMaxBytes  int64
}

func NewAnalysisHandler(analysisService analysis.AnalysisService, uploadMaxBytes int64) AnalysisHandler {
	return &analysisHandlerImpl{
		analysisService: analysisService,
		uploadMaxBytes:  uploadMaxBytes,
	}
}

// Upload implements AnalysisHandler.
func (h *analysisHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)

	if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.analysisService.UploadAttendance(r.Context(), file, fileHeader.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "File processed", result)
}

// List implements AnalysisHandler.
func (h *analysisHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	key, ok := analysis.ParseEmployeeSortKey(r.URL.Query().Get("sort"))
	if !ok {
		response.BadRequest(w, "Unknown sort key", nil)
		return
	}
	desc, ok := sortDirectionFromQuery(r)
	if !ok {
		response.BadRequest(w, "Sort direction must be 'asc' or 'desc'", nil)
		return
	}

	list, err := h.analysisService.List(r.Context(), filter, key, desc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Overall implements AnalysisHandler.
func (h *analysisHandlerImpl) Overall(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analysisService.Overall(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Companies implements AnalysisHandler.
func (h *analysisHandlerImpl) Companies(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analysisService.Companies(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Export implements AnalysisHandler.
func (h *analysisHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.analysisService.Export(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write export body", "error", err)
	}
}

// Reset implements AnalysisHandler.
func (h *analysisHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	h.analysisService.Reset(r.Context())
	response.SuccessWithMessage(w, "Analysis cleared", nil)
}

// GetShift implements AnalysisHandler.
func (h *analysisHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.analysisService.Shift(r.Context()))
}

// UpdateShift implements AnalysisHandler.
func (h *analysisHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req analysis.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shift, err := h.analysisService.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", shift)
}

func filterFromQuery(r *http.Request) analysis.FilterOptions {
	q := r.URL.Query()
	return analysis.FilterOptions{
		DateFrom: q.Get("from"),
		DateTo:   q.Get("to"),
		Company:  q.Get("company"),
		Position: q.Get("position"),
	}
}

func sortDirectionFromQuery(r *http.Request) (desc, ok bool) {
	switch r.URL.Query().Get("dir") {
	case "", "asc":
		return false, true
	case "desc":
		return true, true
	}
	return false, false
}
