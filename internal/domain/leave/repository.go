package leave

import "context"

type LeaveRequestRepository interface {
	GetAll(ctx context.Context) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	// GetByEmployeeID returns the employee's requests, newest start date first.
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]LeaveRequest, error)
	GetPending(ctx context.Context) ([]LeaveRequest, error)
	Create(ctx context.Context, newRequest LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id int64, patch Patch) (LeaveRequest, error)
	Delete(ctx context.Context, id int64) error

	// TransitionStatus moves a pending request to status and records approvedBy.
	// Returns ErrLeaveRequestNotFound for unknown ids and
	// ErrLeaveRequestAlreadyProcessed when the request is no longer pending.
	TransitionStatus(ctx context.Context, id int64, status LeaveStatus, approvedBy string) (LeaveRequest, error)
}
