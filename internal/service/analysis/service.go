// Package analysis wires the processing pipeline (ingest, reconcile,
// aggregate, merge) over the snapshot store and serves the query side.
package analysis

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/pkg/normalize"
	"github.com/tabelio/attendance-backend-go/internal/service/analytics"
	"github.com/tabelio/attendance-backend-go/internal/service/export"
	"github.com/tabelio/attendance-backend-go/internal/service/ingest"
	"github.com/tabelio/attendance-backend-go/internal/service/merge"
	"github.com/tabelio/attendance-backend-go/internal/service/reconcile"
	"github.com/tabelio/attendance-backend-go/internal/service/snapshot"
)

type AnalysisServiceImpl struct {
	store *snapshot.Store
}

func NewAnalysisService(store *snapshot.Store) analysis.AnalysisService {
	return &AnalysisServiceImpl{store: store}
}

// UploadAttendance implements analysis.AnalysisService. A failed upload
// leaves the snapshot exactly as it was.
func (s *AnalysisServiceImpl) UploadAttendance(ctx context.Context, file io.Reader, filename string) (analysis.UploadResult, error) {
	rows, fileCompany, err := ingest.ParseAttendance(file, filename)
	if err != nil {
		return analysis.UploadResult{}, err
	}

	roster := s.store.Roster()
	result, err := reconcile.Reconcile(rows, s.store.Shift(), roster)
	if err != nil {
		return analysis.UploadResult{}, err
	}

	companyByName := make(map[string]string, len(roster))
	for _, e := range roster {
		companyByName[normalize.EmployeeName(e.EmployeeName)] = normalize.Company(e.Company)
	}

	incoming := make([]analysis.EmployeeAnalysis, 0, len(result.Employees))
	for _, emp := range result.Employees {
		company := companyByName[normalize.EmployeeName(emp.Name)]
		if company == "" {
			company = fileCompany
		}
		incoming = append(incoming, analytics.BuildEmployee(emp.Name, company, emp.Logs))
	}

	merged := merge.Merge(s.store.Analyses(), incoming)
	s.store.SetAnalyses(merged)

	return analysis.UploadResult{
		BatchID:     uuid.NewString(),
		Employees:   len(incoming),
		SkippedRows: result.SkippedRows,
		Company:     fileCompany,
	}, nil
}

// List implements analysis.AnalysisService.
func (s *AnalysisServiceImpl) List(ctx context.Context, filter analysis.FilterOptions, key analysis.EmployeeSortKey, desc bool) ([]analysis.EmployeeAnalysis, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	list := analytics.Filter(s.store.Analyses(), filter, s.store.Roster())
	analytics.SortEmployees(list, key, desc)
	return list, nil
}

// Overall implements analysis.AnalysisService.
func (s *AnalysisServiceImpl) Overall(ctx context.Context, filter analysis.FilterOptions) (analysis.OverallStats, error) {
	if err := filter.Validate(); err != nil {
		return analysis.OverallStats{}, err
	}
	list := analytics.Filter(s.store.Analyses(), filter, s.store.Roster())
	return analytics.Overall(list), nil
}

// Companies implements analysis.AnalysisService.
func (s *AnalysisServiceImpl) Companies(ctx context.Context, filter analysis.FilterOptions) ([]analysis.CompanyStats, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	list := analytics.Filter(s.store.Analyses(), filter, s.store.Roster())
	return analytics.Companies(list), nil
}

// Export implements analysis.AnalysisService.
func (s *AnalysisServiceImpl) Export(ctx context.Context, filter analysis.FilterOptions) ([]byte, string, error) {
	if err := filter.Validate(); err != nil {
		return nil, "", err
	}

	list := analytics.Filter(s.store.Analyses(), filter, s.store.Roster())
	if len(list) == 0 {
		return nil, "", analysis.ErrNoAnalysis
	}

	report, err := export.WriteReport(list, analytics.Overall(list), analytics.Companies(list))
	if err != nil {
		return nil, "", fmt.Errorf("failed to build report: %w", err)
	}
	defer report.Close()

	var buf bytes.Buffer
	if err := report.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to serialize report: %w", err)
	}

	name := fmt.Sprintf("attendance_report_%s.xlsx", time.Now().Format("02.01.2006"))
	return buf.Bytes(), name, nil
}

// Shift implements analysis.AnalysisService.
func (s *AnalysisServiceImpl) Shift(ctx context.Context) analysis.Shift {
	return s.store.Shift()
}

// UpdateShift implements analysis.AnalysisService.
func (s *AnalysisServiceImpl) UpdateShift(ctx context.Context, req analysis.UpdateShiftRequest) (analysis.Shift, error) {
	if err := req.Validate(); err != nil {
		return analysis.Shift{}, err
	}
	shift := analysis.Shift{Start: req.Start, End: req.End}
	s.store.SetShift(shift)
	return shift, nil
}

// Reset implements analysis.AnalysisService.
func (s *AnalysisServiceImpl) Reset(ctx context.Context) {
	s.store.Reset()
}
