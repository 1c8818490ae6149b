package report

import (
	"bytes"
	"context"
)

type ReportService interface {
	// ExportAttendance renders the day's attendance sheet as an .xlsx workbook and
	// returns it with a suggested file name. An empty date means today.
	ExportAttendance(ctx context.Context, req ExportAttendanceRequest) (*bytes.Buffer, string, error)
}
