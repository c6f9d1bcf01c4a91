// Package qr renders the portfolio QR code printed in the CV sidebar.
package qr

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/iggarsaudev/career-hub/internal/document"
)

// DefaultPortfolioURL is encoded when the profile has no portfolio URL.
const DefaultPortfolioURL = "https://iggarsaudev-career-hub.vercel.app/"

// DefaultSize is the PNG edge in pixels. The sidebar slot scales it down,
// so a larger source keeps the modules crisp in print.
const DefaultSize = 256

var sidebarBlue = color.RGBA{R: 0x1B, G: 0x38, B: 0x64, A: 0xFF}

type Generator struct {
	Fallback   string
	Size       int
	Foreground color.Color
	Background color.Color
}

func NewGenerator(fallback string) *Generator {
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultPortfolioURL
	}
	return &Generator{Fallback: fallback, Size: DefaultSize, Foreground: sidebarBlue, Background: color.White}
}

// Target returns the URL the code points at.
func (g *Generator) Target(portfolioURL string) string {
	if u := strings.TrimSpace(portfolioURL); u != "" {
		return u
	}
	return g.Fallback
}

// Encode renders a PNG QR code for portfolioURL, or for the fallback when it
// is empty.
func (g *Generator) Encode(ctx context.Context, portfolioURL string) (*document.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, err := qrcode.New(g.Target(portfolioURL), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	q.ForegroundColor = g.Foreground
	q.BackgroundColor = g.Background

	size := g.Size
	if size <= 0 {
		size = DefaultSize
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("qr png: %w", err)
	}
	return &document.Image{Data: png, MIME: "image/png"}, nil
}
