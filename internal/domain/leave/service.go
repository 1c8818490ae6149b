package leave

import "context"

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id int64) (LeaveRequestResponse, error)

	// ListLeaveRequests filters by employee name, status and type, newest start date first
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	GetPendingRequests(ctx context.Context) ([]LeaveRequestResponse, error)
	GetEmployeeRequests(ctx context.Context, employeeID int64) ([]LeaveRequestResponse, error)

	// Approve and Reject are only valid on pending requests
	Approve(ctx context.Context, id int64) (LeaveRequestResponse, error)
	Reject(ctx context.Context, id int64) (LeaveRequestResponse, error)
}
