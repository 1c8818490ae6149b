package dashboard

import (
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
)

// PreviewSize caps the recent-employee and pending-leave lists.
const PreviewSize = 6

type DashboardResponse struct {
	Date            string                       `json:"date"`
	TotalEmployees  int                          `json:"total_employees"` // active only
	PresentToday    int                          `json:"present_today"`
	LateToday       int                          `json:"late_today"`
	AbsentToday     int                          `json:"absent_today"`
	PendingLeave    int                          `json:"pending_leave"`
	RecentEmployees []employee.EmployeeResponse  `json:"recent_employees"`
	PendingRequests []leave.LeaveRequestResponse `json:"pending_requests"`
}
