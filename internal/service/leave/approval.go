package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
)

// DefaultApprover is recorded when the caller's token carries no name.
const DefaultApprover = "HR Manager"

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id int64) (leave.LeaveRequestResponse, error) {
	return s.transition(ctx, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id int64) (leave.LeaveRequestResponse, error) {
	return s.transition(ctx, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) transition(ctx context.Context, id int64, status leave.LeaveStatus) (leave.LeaveRequestResponse, error) {
	approver := s.approverName(ctx)

	updated, err := s.leaveRepo.TransitionStatus(ctx, id, status, approver)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to %s leave request: %w", verb(status), err)
	}

	slog.Info("Leave request processed", "leave_request_id", id, "status", status, "approved_by", approver)

	rendered, err := s.render(ctx, []leave.LeaveRequest{updated})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return rendered[0], nil
}

// approverName prefers the verified caller's display name.
func (s *LeaveServiceImpl) approverName(ctx context.Context) string {
	actor, err := auth.ActorFromContext(ctx)
	if err == nil && strings.TrimSpace(actor.Name) != "" {
		return strings.TrimSpace(actor.Name)
	}
	return s.defaultApprover
}

func verb(status leave.LeaveStatus) string {
	if status == leave.StatusApproved {
		return "approve"
	}
	return "reject"
}
