package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggarsaudev/career-hub/internal/usecase"
)

const snapshotJSON = `{
	"profile": {"name": "Ana Ruiz", "title": "Desarrolladora", "title_en": "Developer"},
	"experience": [{"position": "Backend Dev", "company": "Acme", "startDate": "2022-01-01", "description": "Construí APIs", "description_en": "Built APIs"}],
	"skills": [{"name": "Go", "category": "Lenguajes", "category_en": "Languages"}]
}`

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(snapshot, []byte(snapshotJSON), 0o600))

	t.Setenv("CONTENT_SOURCE", "file")
	t.Setenv("CONTENT_FILE", snapshot)
	t.Setenv("CV_STORE", "fs")
	t.Setenv("CV_STORE_DIR", filepath.Join(dir, "store"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPublishAndFetch(t *testing.T) {
	dir := setupEnv(t)

	_, err := run(t, "fetch", "--out", filepath.Join(dir, "none.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CV published yet")

	bad := filepath.Join(dir, "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("plain text"), 0o600))
	_, err = run(t, "publish", "--file", bad)
	require.Error(t, err)

	good := filepath.Join(dir, "good.pdf")
	require.NoError(t, os.WriteFile(good, []byte("%PDF-1.7 cli"), 0o600))
	out, err := run(t, "publish", "--file", good)
	require.NoError(t, err)
	assert.Contains(t, out, "published")

	fetched := filepath.Join(dir, "fetched.pdf")
	_, err = run(t, "fetch", "--out", fetched)
	require.NoError(t, err)
	b, err := os.ReadFile(fetched)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 cli", string(b))

	out, err = run(t, "fetch", "--out", "-")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 cli", out)
}

func TestRenderHTML(t *testing.T) {
	dir := setupEnv(t)
	out := filepath.Join(dir, "preview.html")

	_, err := run(t, "render", "--html", "--lang", "en", "--out", out)
	require.NoError(t, err)
	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Ana Ruiz")
	assert.Contains(t, string(html), "Built APIs")
	assert.Contains(t, string(html), "January 2022")
}

func TestSite(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "site", "--lang", "en")
	require.NoError(t, err)
	var v usecase.SiteView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.NotNil(t, v.Profile)
	assert.Equal(t, "Developer", v.Profile.Title)
	require.Len(t, v.Skills, 1)
	assert.Equal(t, "Languages", v.Skills[0].Category)
}

func TestConfigFileMissing(t *testing.T) {
	setupEnv(t)
	t.Cleanup(func() { configFile = "" })
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.env"), "site")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
