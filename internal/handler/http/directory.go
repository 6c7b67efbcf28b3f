package http

import (
	"log/slog"
	"net/http"

	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	"github.com/tabelio/attendance-backend-go/internal/handler/http/response"
)

type DirectoryHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Companies(w http.ResponseWriter, r *http.Request)
	Positions(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	directoryService directory.DirectoryService
	uploadMaxBytes   int64
}

func NewDirectoryHandler(directoryService directory.DirectoryService, uploadMaxBytes int64) DirectoryHandler {
	return &directoryHandlerImpl{
		directoryService: directoryService,
		uploadMaxBytes:   uploadMaxBytes,
	}
}

// Upload implements DirectoryHandler.
func (h *directoryHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)

	if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
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

	count, err := h.directoryService.UploadDirectory(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Directory replaced", map[string]int{"entries": count})
}

// List implements DirectoryHandler.
func (h *directoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key, ok := directory.ParseSortKey(q.Get("sort"))
	if !ok {
		response.BadRequest(w, "Unknown sort key", nil)
		return
	}
	desc, ok := sortDirectionFromQuery(r)
	if !ok {
		response.BadRequest(w, "Sort direction must be 'asc' or 'desc'", nil)
		return
	}

	entries, err := h.directoryService.List(r.Context(), q.Get("company"), q.Get("position"), key, desc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Companies implements DirectoryHandler.
func (h *directoryHandlerImpl) Companies(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.directoryService.Companies(r.Context()))
}

// Positions implements DirectoryHandler.
func (h *directoryHandlerImpl) Positions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.directoryService.Positions(r.Context(), r.URL.Query().Get("company")))
}
