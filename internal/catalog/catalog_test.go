package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanmills/resumatch/internal/types"
)

func TestStatic_ListReturnsFixedSet(t *testing.T) {
	static := &Static{Opportunities: []types.Opportunity{
		{Title: "Engineer", Organization: "Acme"},
	}}

	got, err := static.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Engineer", got[0].Title)
}

func TestFile_ListReadsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{"title": "Backend Engineer", "organization": "Acme", "required_skills": ["Go"]},
		{"title": "Frontend Engineer", "organization": "Initech", "required_skills": ["React"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	file := &File{Path: path}
	got, err := file.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Backend Engineer", got[0].Title)
	assert.Equal(t, []string{"React"}, got[1].RequiredSkills)
}

func TestFile_ListPicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	file := &File{Path: path}
	got, err := file.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, os.WriteFile(path, []byte(`[{"title": "New Role"}]`), 0o600))
	got, err = file.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFile_ListMissingFile(t *testing.T) {
	file := &File{Path: filepath.Join(t.TempDir(), "missing.json")}

	_, err := file.List(context.Background())
	assert.Error(t, err)
}

func TestFile_ListMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	file := &File{Path: path}
	_, err := file.List(context.Background())
	assert.Error(t, err)
}
