// Package storage holds the backends of the published CV slot. Every backend
// keeps exactly one document under a fixed name: a publish replaces the
// previous copy wholesale and a retrieve before any publish reports
// common.ErrNotPublished.
package storage

import (
	"fmt"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

func checkPDF(pdf []byte) error {
	if !domain.IsPDF(pdf) {
		return common.ErrInvalidDocument
	}
	return nil
}

func publishFailure(err error) error {
	return fmt.Errorf("%w: %w", common.ErrPublishFailure, err)
}
