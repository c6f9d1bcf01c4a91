package domain

import (
	"bytes"
	"time"
)

var pdfMagic = []byte("%PDF")

// IsPDF reports whether b carries the PDF file signature.
func IsPDF(b []byte) bool {
	return bytes.HasPrefix(b, pdfMagic)
}

// PublishAck acknowledges a write to the published CV slot.
type PublishAck struct {
	Key         string    `json:"key"`
	Size        int       `json:"size"`
	PublishedAt time.Time `json:"publishedAt"`
}
