package document

import (
	"strings"

	"github.com/iggarsaudev/career-hub/internal/common"
)

// FileName suggests the download name for a CV: "CV_Ana_Ruiz.pdf".
func FileName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return common.DefaultDownloadName
	}
	return "CV_" + strings.Join(fields, "_") + ".pdf"
}
