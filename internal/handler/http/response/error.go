package response

import (
	"errors"
	"net/http"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	"github.com/tabelio/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Fatal-per-file upload errors
	case errors.Is(err, analysis.ErrHeaderNotFound):
		UnprocessableEntity(w, "No header row found: expected columns Сотрудник/ФИО, Дата, Время, Событие")
	case errors.Is(err, analysis.ErrNoUsableData):
		UnprocessableEntity(w, "No usable rows found in the uploaded file")
	case errors.Is(err, directory.ErrNoUsableData):
		UnprocessableEntity(w, "No directory entries found in the uploaded file")

	// Query-time errors
	case errors.Is(err, analysis.ErrNoAnalysis):
		NotFound(w, "No analysis loaded")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
