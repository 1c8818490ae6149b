package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/filter"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	leaveRepo         leave.LeaveRequestRepository
	attendanceService attendance.AttendanceService
}

func NewDashboardService(employeeRepo employee.EmployeeRepository, leaveRepo leave.LeaveRequestRepository, attendanceService attendance.AttendanceService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:      employeeRepo,
		leaveRepo:         leaveRepo,
		attendanceService: attendanceService,
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// GetDashboard returns combined dashboard data using parallel goroutines.
// Today's attendance goes through the attendance service so absent rows are
// materialized before they are counted.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	var (
		employees []employee.Employee
		today     attendance.ListAttendanceResponse
		pending   []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		today, err = s.attendanceService.ListAttendance(gCtx, attendance.AttendanceFilter{})
		if err != nil {
			return fmt.Errorf("failed to load today's attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		pending, err = s.leaveRepo.GetPending(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load pending leave requests: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	active := employee.Active(employees)
	byID := filter.Index(employees, func(e employee.Employee) int64 { return e.ID })

	resp := &dashboard.DashboardResponse{
		Date:            today.Date,
		TotalEmployees:  len(active),
		PresentToday:    today.Counts.Present,
		LateToday:       today.Counts.Late,
		AbsentToday:     today.Counts.Absent,
		PendingLeave:    len(pending),
		RecentEmployees: make([]employee.EmployeeResponse, 0, dashboard.PreviewSize),
		PendingRequests: make([]leave.LeaveRequestResponse, 0, dashboard.PreviewSize),
	}
	for _, e := range firstN(active, dashboard.PreviewSize) {
		resp.RecentEmployees = append(resp.RecentEmployees, employee.NewEmployeeResponse(e))
	}
	for _, r := range firstN(pending, dashboard.PreviewSize) {
		var emp *employee.Employee
		if e, ok := byID[r.EmployeeID]; ok {
			emp = &e
		}
		resp.PendingRequests = append(resp.PendingRequests, leave.NewLeaveRequestResponse(r, emp))
	}
	return resp, nil
}
