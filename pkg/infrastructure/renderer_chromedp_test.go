package infrastructure

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/document"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

// chromeAvailable reports whether a Chrome binary exists at execPath or on PATH.
func chromeAvailable(execPath string) bool {
	if execPath != "" {
		_, err := os.Stat(execPath)
		return err == nil
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell", "chrome"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func chromeOrSkip(t *testing.T) *ChromedpRenderer {
	t.Helper()
	execPath := os.Getenv("CHROME_PATH")
	if !chromeAvailable(execPath) {
		t.Skip("chrome not available")
	}
	return NewChromedpRenderer(MustHTMLRenderer(), execPath, 60*time.Second)
}

func TestChromedpRenderer_Render(t *testing.T) {
	r := chromeOrSkip(t)
	doc := sampleDocument(t, &document.Image{Data: tinyPNG(t), MIME: "image/png"}).WithoutAvatar()

	pdf, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, domain.IsPDF(pdf))
}

func TestChromedpRenderer_RenderStream(t *testing.T) {
	r := chromeOrSkip(t)
	doc := sampleDocument(t, nil).WithoutAvatar()

	var buf bytes.Buffer
	require.NoError(t, r.RenderStream(context.Background(), doc, &buf))
	assert.True(t, domain.IsPDF(buf.Bytes()))
}

func TestChromedpRenderer_BrokenImage(t *testing.T) {
	r := chromeOrSkip(t)
	doc := sampleDocument(t, nil)
	avatar, ok := doc.Block(document.BlockAvatar)
	require.True(t, ok)
	avatar.Nodes[0].Image.URL = "file:///nonexistent/avatar.png"

	_, err := r.Render(context.Background(), doc)
	assert.ErrorIs(t, err, common.ErrRenderFailure)
}
