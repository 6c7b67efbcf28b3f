// Package directory serves the reference roster: uploads replace it
// wholesale, queries feed the list view and the filter dropdowns.
package directory

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
	"github.com/tabelio/attendance-backend-go/internal/pkg/normalize"
	"github.com/tabelio/attendance-backend-go/internal/service/analytics"
	"github.com/tabelio/attendance-backend-go/internal/service/ingest"
	"github.com/tabelio/attendance-backend-go/internal/service/snapshot"
)

type DirectoryServiceImpl struct {
	store *snapshot.Store
}

func NewDirectoryService(store *snapshot.Store) directory.DirectoryService {
	return &DirectoryServiceImpl{store: store}
}

// UploadDirectory implements directory.DirectoryService. The uploaded
// roster replaces the current one entirely; a failed parse keeps the old
// roster in place.
func (s *DirectoryServiceImpl) UploadDirectory(ctx context.Context, file io.Reader) (int, error) {
	entries, err := ingest.ParseDirectory(file)
	if err != nil {
		return 0, err
	}
	s.store.SetRoster(entries)
	return len(entries), nil
}

// List implements directory.DirectoryService.
func (s *DirectoryServiceImpl) List(ctx context.Context, company, position string, key directory.SortKey, desc bool) ([]directory.Entry, error) {
	company = strings.TrimSpace(company)
	position = strings.TrimSpace(position)

	all := s.store.Roster()
	entries := make([]directory.Entry, 0, len(all))
	for _, e := range all {
		if company != "" && e.Company != company {
			continue
		}
		if position != "" && e.Position != position {
			continue
		}
		entries = append(entries, e)
	}

	analytics.SortDirectory(entries, key, desc)
	return entries, nil
}

// Companies implements directory.DirectoryService.
func (s *DirectoryServiceImpl) Companies(ctx context.Context) []string {
	return distinct(s.store.Roster(), func(e directory.Entry) string { return e.Company })
}

// Positions implements directory.DirectoryService.
func (s *DirectoryServiceImpl) Positions(ctx context.Context, company string) []string {
	company = strings.TrimSpace(company)
	roster := s.store.Roster()
	if company != "" {
		filtered := roster[:0]
		for _, e := range roster {
			if e.Company == company {
				filtered = append(filtered, e)
			}
		}
		roster = filtered
	}
	return distinct(roster, func(e directory.Entry) string { return e.Position })
}

// distinct collects unique non-empty values in locale-aware order.
func distinct(entries []directory.Entry, field func(directory.Entry) string) []string {
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, e := range entries {
		v := strings.TrimSpace(field(e))
		if v == "" || v == "–" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	c := normalize.Collator()
	sort.Slice(out, func(i, j int) bool {
		return c.CompareString(out[i], out[j]) < 0
	})
	return out
}
