package leave

import (
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID int64   `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Type       string  `json:"type"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}

	start, startOK := validator.IsValidDate(strings.TrimSpace(r.StartDate))
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start date is required")
	} else if !startOK {
		errs.Add("start_date", "start date must be in YYYY-MM-DD format")
	}

	end, endOK := validator.IsValidDate(strings.TrimSpace(r.EndDate))
	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end date is required")
	} else if !endOK {
		errs.Add("end_date", "end date must be in YYYY-MM-DD format")
	}

	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end date must not be before start date")
	}

	if validator.IsEmpty(r.Type) {
		errs.Add("type", "type is required")
	} else if !LeaveType(r.Type).IsValid() {
		errs.Add("type", "type must be one of vacation, sick, personal")
	}

	return errs.Err()
}

// ToEntity builds a pending request. Call Validate first.
func (r *CreateLeaveRequestRequest) ToEntity() LeaveRequest {
	start, _ := validator.ParseDate(r.StartDate)
	end, _ := validator.ParseDate(r.EndDate)

	var reason *string
	if r.Reason != nil && !validator.IsEmpty(*r.Reason) {
		v := strings.TrimSpace(*r.Reason)
		reason = &v
	}

	return LeaveRequest{
		EmployeeID: r.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Type:       LeaveType(r.Type),
		Reason:     reason,
		Status:     StatusPending,
	}
}

// LeaveRequestFilter mirrors the leave page. Search matches the employee name.
type LeaveRequestFilter struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != "" && !LeaveStatus(f.Status).IsValid() {
		errs.Add("status", "status must be one of pending, approved, rejected")
	}
	if f.Type != "" && !LeaveType(f.Type).IsValid() {
		errs.Add("type", "type must be one of vacation, sick, personal")
	}
	return errs.Err()
}

type LeaveRequestResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Department   string  `json:"department,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Type         string  `json:"type"`
	Reason       *string `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by"`
	CreatedAt    string  `json:"created_at"`
}

// NewLeaveRequestResponse renders a request; emp may be nil when the employee is unknown.
func NewLeaveRequestResponse(l LeaveRequest, emp *employee.Employee) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  validator.FormatDate(l.StartDate),
		EndDate:    validator.FormatDate(l.EndDate),
		Days:       l.Days(),
		Type:       string(l.Type),
		Reason:     l.Reason,
		Status:     string(l.Status),
		ApprovedBy: l.ApprovedBy,
		CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if emp != nil {
		resp.EmployeeName = emp.Name
		resp.Department = emp.Department
	}
	return resp
}

type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func CountStatuses(requests []LeaveRequest) StatusCounts {
	var c StatusCounts
	for _, r := range requests {
		switch r.Status {
		case StatusPending:
			c.Pending++
		case StatusApproved:
			c.Approved++
		case StatusRejected:
			c.Rejected++
		}
	}
	return c
}

type ListLeaveRequestResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Total    int                    `json:"total"`
	Counts   StatusCounts           `json:"counts"`
}
