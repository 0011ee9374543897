// Package catalog provides read-only access to the opportunity listing
// source. The catalog is owned by an external collaborator; implementations
// here only adapt it into a finite in-memory sequence for the matcher.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethanmills/resumatch/internal/types"
)

// Catalog returns the current finite set of candidate opportunities
type Catalog interface {
	List(ctx context.Context) ([]types.Opportunity, error)
}

// Static serves a fixed in-memory slice. Used in tests and as a dev seed.
type Static struct {
	Opportunities []types.Opportunity
}

// List returns the fixed opportunity set
func (s *Static) List(_ context.Context) ([]types.Opportunity, error) {
	return s.Opportunities, nil
}

// File reads the catalog from a JSON file on every call, so catalog updates
// do not require a restart. No freshness guarantee is assumed either way.
type File struct {
	Path string
}

// List loads and decodes the catalog file
func (f *File) List(_ context.Context) ([]types.Opportunity, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", f.Path, err)
	}

	var opportunities []types.Opportunity
	if err := json.Unmarshal(data, &opportunities); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return opportunities, nil
}
