package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type leaveRequestRepositoryImpl struct {
	s *Store
}

func NewLeaveRequestRepository(s *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{s: s}
}

func cloneLeave(l leave.LeaveRequest) leave.LeaveRequest {
	l.Reason = cloneString(l.Reason)
	l.ApprovedBy = cloneString(l.ApprovedBy)
	return l
}

func (r *leaveRequestRepositoryImpl) list(keep func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	t := r.s.leaves
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]leave.LeaveRequest, 0)
	for _, l := range t.sorted() {
		if keep == nil || keep(l) {
			out = append(out, cloneLeave(l))
		}
	}
	return out
}

func (r *leaveRequestRepositoryImpl) GetAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(nil), nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	t := r.s.leaves
	t.mu.RLock()
	defer t.mu.RUnlock()

	l, ok := t.rows[id]
	if !ok {
		return leave.LeaveRequest{}, fmt.Errorf("leave request with id %d: %w", id, leave.ErrLeaveRequestNotFound)
	}
	return cloneLeave(l), nil
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	rows := r.list(func(l leave.LeaveRequest) bool { return l.EmployeeID == employeeID })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].StartDate.After(rows[j].StartDate) })
	return rows, nil
}

func (r *leaveRequestRepositoryImpl) GetPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(leave.LeaveRequest.IsPending), nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	t := r.s.leaves
	t.mu.Lock()
	defer t.mu.Unlock()

	now := r.s.timestamp()
	newRequest = cloneLeave(newRequest)
	newRequest.ID = t.allocate()
	newRequest.StartDate = validator.DateOf(newRequest.StartDate)
	newRequest.EndDate = validator.DateOf(newRequest.EndDate)
	if newRequest.Status == "" {
		newRequest.Status = leave.StatusPending
	}
	newRequest.CreatedAt = now
	newRequest.UpdatedAt = now
	t.rows[newRequest.ID] = newRequest
	return cloneLeave(newRequest), nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id int64, patch leave.Patch) (leave.LeaveRequest, error) {
	t := r.s.leaves
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.rows[id]
	if !ok {
		return leave.LeaveRequest{}, fmt.Errorf("leave request with id %d: %w", id, leave.ErrLeaveRequestNotFound)
	}
	patch.ApplyTo(&l)
	l.UpdatedAt = r.s.timestamp()
	t.rows[id] = l
	return cloneLeave(l), nil
}

func (r *leaveRequestRepositoryImpl) TransitionStatus(ctx context.Context, id int64, status leave.LeaveStatus, approvedBy string) (leave.LeaveRequest, error) {
	t := r.s.leaves
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.rows[id]
	if !ok {
		return leave.LeaveRequest{}, fmt.Errorf("leave request with id %d: %w", id, leave.ErrLeaveRequestNotFound)
	}
	if !l.IsPending() {
		return leave.LeaveRequest{}, fmt.Errorf("leave request with id %d is %s: %w", id, l.Status, leave.ErrLeaveRequestAlreadyProcessed)
	}
	l.Status = status
	l.ApprovedBy = &approvedBy
	l.UpdatedAt = r.s.timestamp()
	t.rows[id] = l
	return cloneLeave(l), nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id int64) error {
	t := r.s.leaves
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("leave request with id %d: %w", id, leave.ErrLeaveRequestNotFound)
	}
	delete(t.rows, id)
	return nil
}
