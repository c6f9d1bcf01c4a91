package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"profile": {"name": "Ana Ruiz"},
		"languages": [{"name": "Inglés", "name_en": "English", "level": "B2"}]
	}`), 0o600))
	repo := NewFileRepo(path)
	ctx := context.Background()

	p, err := repo.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Ruiz", p.Name)

	langs, err := repo.Languages(ctx)
	require.NoError(t, err)
	require.Len(t, langs, 1)
	assert.Equal(t, "English", langs[0].Name.EN)

	projects, err := repo.Projects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestFileRepo_Missing(t *testing.T) {
	_, err := NewFileRepo(filepath.Join(t.TempDir(), "nope.json")).Skills(context.Background())
	assert.Error(t, err)
}
