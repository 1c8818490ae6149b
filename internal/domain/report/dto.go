package report

import (
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

const (
	SheetName   = "Attendance"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Columns is the header row of the attendance sheet.
var Columns = []string{"Employee", "Department", "Status", "Check In", "Check Out"}

type ExportAttendanceRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

func (r *ExportAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != "" {
		if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}
