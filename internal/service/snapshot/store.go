// Package snapshot owns the single coherent analysis state the merge
// engine folds into. All access is serialized; concurrent uploads resolve
// last-writer-wins.
package snapshot

import (
	"sync"

	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
)

type Store struct {
	mu       sync.Mutex
	analyses []analysis.EmployeeAnalysis
	roster   []directory.Entry
	shift    analysis.Shift

	defaultRoster []directory.Entry
	defaultShift  analysis.Shift
}

// New seeds the store with the built-in roster and the configured shift
// boundaries; Reset restores exactly this state.
func New(shift analysis.Shift, roster []directory.Entry) *Store {
	return &Store{
		roster:        append([]directory.Entry(nil), roster...),
		shift:         shift,
		defaultRoster: append([]directory.Entry(nil), roster...),
		defaultShift:  shift,
	}
}

// Analyses returns a copy of the current analysis set. Callers own the
// returned slice exclusively.
func (s *Store) Analyses() []analysis.EmployeeAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]analysis.EmployeeAnalysis(nil), s.analyses...)
}

func (s *Store) SetAnalyses(list []analysis.EmployeeAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = append([]analysis.EmployeeAnalysis(nil), list...)
}

func (s *Store) Roster() []directory.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]directory.Entry(nil), s.roster...)
}

func (s *Store) SetRoster(entries []directory.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = append([]directory.Entry(nil), entries...)
}

func (s *Store) Shift() analysis.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shift
}

func (s *Store) SetShift(shift analysis.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shift = shift
}

// Reset clears loaded analyses and restores the seed roster and shift.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = nil
	s.roster = append([]directory.Entry(nil), s.defaultRoster...)
	s.shift = s.defaultShift
}
