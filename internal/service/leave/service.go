package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/filter"
	"golang.org/x/sync/errgroup"
)

type LeaveServiceImpl struct {
	leaveRepo       leave.LeaveRequestRepository
	employeeRepo    employee.EmployeeRepository
	defaultApprover string
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository, defaultApprover string) leave.LeaveService {
	if defaultApprover == "" {
		defaultApprover = DefaultApprover
	}
	return &LeaveServiceImpl{
		leaveRepo:       leaveRepo,
		employeeRepo:    employeeRepo,
		defaultApprover: defaultApprover,
	}
}

func newestFirst(a, b leave.LeaveRequest) bool {
	return a.StartDate.After(b.StartDate)
}

// render joins requests to their employees. Requests whose employee is gone
// are still rendered, without a name.
func (s *LeaveServiceImpl) render(ctx context.Context, requests []leave.LeaveRequest) ([]leave.LeaveRequestResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	byID := filter.Index(employees, func(e employee.Employee) int64 { return e.ID })

	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		var emp *employee.Employee
		if e, ok := byID[r.EmployeeID]; ok {
			emp = &e
		}
		out = append(out, leave.NewLeaveRequestResponse(r, emp))
	}
	return out, nil
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.leaveRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request created", "leave_request_id", created.ID, "employee_id", emp.ID, "type", created.Type)
	return leave.NewLeaveRequestResponse(created, &emp), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id int64) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	rendered, err := s.render(ctx, []leave.LeaveRequest{request})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return rendered[0], nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, f leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := f.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	var (
		requests  []leave.LeaveRequest
		employees []employee.Employee
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.leaveRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load leave requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	byID := filter.Index(employees, func(e employee.Employee) int64 { return e.ID })

	// A name search needs the employee, so unresolved requests drop out. Without
	// one every request is listed and the name stays empty when unknown.
	type row = filter.Joined[leave.LeaveRequest, *employee.Employee]
	rows := make([]row, 0, len(requests))
	if strings.TrimSpace(f.Search) != "" {
		for _, j := range filter.Join(requests, func(r leave.LeaveRequest) int64 { return r.EmployeeID }, byID) {
			emp := j.Ref
			rows = append(rows, row{Item: j.Item, Ref: &emp})
		}
	} else {
		for _, r := range requests {
			var ref *employee.Employee
			if emp, ok := byID[r.EmployeeID]; ok {
				ref = &emp
			}
			rows = append(rows, row{Item: r, Ref: ref})
		}
	}

	matched := filter.Apply(rows,
		filter.Contains(f.Search, func(r row) string { return r.Ref.Name }),
		filter.Equals(leave.LeaveStatus(f.Status), func(r row) leave.LeaveStatus { return r.Item.Status }),
		filter.Equals(leave.LeaveType(f.Type), func(r row) leave.LeaveType { return r.Item.Type }),
	)
	matched = filter.SortBy(matched, func(a, b row) bool { return newestFirst(a.Item, b.Item) })

	result := leave.ListLeaveRequestResponse{
		Requests: make([]leave.LeaveRequestResponse, 0, len(matched)),
		Total:    len(matched),
		Counts:   leave.CountStatuses(requests),
	}
	for _, r := range matched {
		result.Requests = append(result.Requests, leave.NewLeaveRequestResponse(r.Item, r.Ref))
	}
	return result, nil
}

// GetPendingRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetPendingRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	pending, err := s.leaveRepo.GetPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending leave requests: %w", err)
	}
	return s.render(ctx, pending)
}

// GetEmployeeRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetEmployeeRequests(ctx context.Context, employeeID int64) ([]leave.LeaveRequestResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	requests, err := s.leaveRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave requests: %w", err)
	}
	requests = filter.SortBy(requests, newestFirst)

	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, leave.NewLeaveRequestResponse(r, &emp))
	}
	return out, nil
}
