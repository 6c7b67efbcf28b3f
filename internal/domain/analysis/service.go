package analysis

import (
	"context"
	"io"
)

// AnalysisService is the per-upload processing pipeline plus the queries
// served from the current analysis snapshot. Each upload is processed
// end-to-end (parse, reconcile, aggregate, merge) before its result is
// visible to any query.
type AnalysisService interface {
	// UploadAttendance ingests one attendance export and folds it into the
	// current snapshot. Fatal-per-file conditions return ErrHeaderNotFound
	// or ErrNoUsableData and leave the snapshot untouched.
	UploadAttendance(ctx context.Context, file io.Reader, filename string) (UploadResult, error)

	List(ctx context.Context, filter FilterOptions, key EmployeeSortKey, desc bool) ([]EmployeeAnalysis, error)
	Overall(ctx context.Context, filter FilterOptions) (OverallStats, error)
	Companies(ctx context.Context, filter FilterOptions) ([]CompanyStats, error)

	// Export renders the filtered snapshot as an xlsx report and returns
	// its bytes plus a suggested file name.
	Export(ctx context.Context, filter FilterOptions) ([]byte, string, error)

	Shift(ctx context.Context) Shift
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (Shift, error)

	// Reset discards all loaded analyses and restores the built-in roster.
	Reset(ctx context.Context)
}
