package attendance

import (
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date,omitempty"`   // YYYY-MM-DD, defaults to today
	Time       string `json:"time,omitempty"`   // HH:MM:SS, defaults to now
	Status     string `json:"status,omitempty"` // defaults to the lateness policy
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if r.Time != "" {
		if _, ok := validator.IsValidClock(strings.TrimSpace(r.Time)); !ok {
			errs.Add("time", "time must be in HH:MM:SS format")
		}
	}
	if r.Status != "" && !Status(r.Status).IsValid() {
		errs.Add("status", "status must be one of present, late, absent, leave")
	}
	return errs.Err()
}

type CheckOutRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if r.Time != "" {
		if _, ok := validator.IsValidClock(strings.TrimSpace(r.Time)); !ok {
			errs.Add("time", "time must be in HH:MM:SS format")
		}
	}
	return errs.Err()
}

// AttendanceFilter mirrors the attendance page. Search matches the employee name.
type AttendanceFilter struct {
	Date   string `json:"date,omitempty"`
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Date != "" {
		if _, ok := validator.IsValidDate(strings.TrimSpace(f.Date)); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if f.Status != "" && !Status(f.Status).IsValid() {
		errs.Add("status", "status must be one of present, late, absent, leave")
	}
	return errs.Err()
}

type AttendanceResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Department   string  `json:"department,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       string  `json:"status"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       validator.FormatDate(a.Date),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     string(a.Status),
	}
}

func NewRowResponse(r Row) AttendanceResponse {
	resp := NewAttendanceResponse(r.Attendance)
	resp.EmployeeName = r.Employee.Name
	resp.Department = r.Employee.Department
	return resp
}

type StatusCounts struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
}

// CountStatuses tallies rows by status.
func CountStatuses(rows []Attendance) StatusCounts {
	var c StatusCounts
	for _, r := range rows {
		switch r.Status {
		case StatusPresent:
			c.Present++
		case StatusLate:
			c.Late++
		case StatusAbsent:
			c.Absent++
		case StatusLeave:
			c.Leave++
		}
	}
	return c
}

type ListAttendanceResponse struct {
	Date    string               `json:"date"`
	Records []AttendanceResponse `json:"records"`
	Total   int                  `json:"total"`
	Counts  StatusCounts         `json:"counts"` // over the whole day, before filtering
}
