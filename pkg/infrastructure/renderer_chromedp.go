package infrastructure

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	cdpio "github.com/chromedp/cdproto/io"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/document"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

// streamChunk is the IO.read size requested per round trip.
const streamChunk = 256 << 10

// waitImagesJS resolves once every <img> has loaded or failed, with the
// list of images that did not decode.
const waitImagesJS = `Promise.all(Array.from(document.images).map(function (img) {
  if (img.complete) { return Promise.resolve(); }
  return new Promise(function (resolve) { img.onload = resolve; img.onerror = resolve; });
})).then(function () {
  return Array.from(document.images)
    .filter(function (img) { return img.naturalWidth === 0; })
    .map(function (img) { return img.alt || img.getAttribute("src").slice(0, 64); });
})`

// ChromedpRenderer prints documents to PDF through headless Chrome.
type ChromedpRenderer struct {
	html     *HTMLRenderer
	execPath string
	timeout  time.Duration
}

func NewChromedpRenderer(html *HTMLRenderer, execPath string, timeout time.Duration) *ChromedpRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromedpRenderer{html: html, execPath: execPath, timeout: timeout}
}

// Render returns the PDF bytes for doc.
func (r *ChromedpRenderer) Render(ctx context.Context, doc *document.Document) ([]byte, error) {
	var pdfBuf []byte
	err := r.run(ctx, doc, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		pdfBuf, _, err = printParams().Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	if !domain.IsPDF(pdfBuf) {
		return nil, fmt.Errorf("%w: invalid PDF output (len=%d)", common.ErrRenderFailure, len(pdfBuf))
	}
	return pdfBuf, nil
}

// RenderStream prints doc and copies the PDF to w as Chrome produces it.
func (r *ChromedpRenderer) RenderStream(ctx context.Context, doc *document.Document, w io.Writer) error {
	return r.run(ctx, doc, chromedp.ActionFunc(func(ctx context.Context) error {
		_, handle, err := printParams().
			WithTransferMode(page.PrintToPDFTransferModeReturnAsStream).
			Do(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = cdpio.Close(handle).Do(ctx) }()
		sw := &signatureWriter{w: w}
		if err := copyStream(ctx, handle, sw); err != nil {
			return err
		}
		if !sw.ok {
			return fmt.Errorf("%w: invalid PDF stream (len=%d)", common.ErrRenderFailure, len(sw.head))
		}
		return nil
	}))
}

func printParams() *page.PrintToPDFParams {
	// A4: 210mm x 297mm -> inches: 8.27 x 11.69
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(8.27).
		WithPaperHeight(11.69).
		WithMarginTop(0).
		WithMarginBottom(0).
		WithMarginLeft(0).
		WithMarginRight(0).
		WithPreferCSSPageSize(true)
}

func copyStream(ctx context.Context, handle cdpio.StreamHandle, w io.Writer) error {
	for {
		var res cdpio.ReadReturns
		if err := cdp.Execute(ctx, cdpio.CommandRead, cdpio.Read(handle).WithSize(streamChunk), &res); err != nil {
			return err
		}
		chunk := []byte(res.Data)
		if res.Base64encoded {
			dec, err := base64.StdEncoding.DecodeString(res.Data)
			if err != nil {
				return err
			}
			chunk = dec
		}
		if len(chunk) > 0 {
			if _, err := w.Write(chunk); err != nil {
				return err
			}
		}
		if res.EOF {
			return nil
		}
	}
}

// signatureWriter rejects output that does not start with the PDF magic.
type signatureWriter struct {
	w    io.Writer
	head []byte
	ok   bool
}

func (s *signatureWriter) Write(p []byte) (int, error) {
	if s.ok {
		return s.w.Write(p)
	}
	need := 4 - len(s.head)
	if len(p) < need {
		s.head = append(s.head, p...)
		return len(p), nil
	}
	s.head = append(s.head, p[:need]...)
	if !domain.IsPDF(s.head) {
		return 0, fmt.Errorf("%w: invalid PDF stream", common.ErrRenderFailure)
	}
	s.ok = true
	if _, err := s.w.Write(s.head); err != nil {
		return 0, err
	}
	if _, err := s.w.Write(p[need:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (r *ChromedpRenderer) run(ctx context.Context, doc *document.Document, printAction chromedp.Action) error {
	html, err := r.html.Render(doc)
	if err != nil {
		return err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "career-hub-cv-")
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRenderFailure, err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrRenderFailure, err)
	}

	var broken []string
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(htmlPath)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(waitImagesJS, &broken, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if len(broken) > 0 {
				return fmt.Errorf("%w: broken images: %s", common.ErrRenderFailure, strings.Join(broken, ", "))
			}
			return nil
		}),
		printAction,
	)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, common.ErrRenderFailure) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrRenderFailure, err)
}
