package directory

import (
	"context"
	"io"
)

// DirectoryService manages the reference roster backing identity
// resolution and the employee list views.
type DirectoryService interface {
	// UploadDirectory replaces the current roster with the entries parsed
	// from an uploaded directory export.
	UploadDirectory(ctx context.Context, file io.Reader) (int, error)

	List(ctx context.Context, company, position string, key SortKey, desc bool) ([]Entry, error)

	// Companies and Positions feed the filter dropdowns. Positions may be
	// narrowed to one company's employees.
	Companies(ctx context.Context) []string
	Positions(ctx context.Context, company string) []string
}
