package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `id, employee_id, start_date, end_date, type, reason, status, approved_by, created_at, updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Type, &l.Reason,
		&l.Status, &l.ApprovedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("query leave requests", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, wrap("scan leave request", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate leave requests", err)
	}
	return requests, nil
}

// GetAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests ORDER BY id`)
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests WHERE employee_id = $1 ORDER BY start_date DESC, id DESC`, employeeID)
}

// GetPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests WHERE status = $1 ORDER BY id`, leave.StatusPending)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeaveRequest(q.QueryRow(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, wrap("get leave request", err)
	}
	return l, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if newRequest.Status == "" {
		newRequest.Status = leave.StatusPending
	}

	query := `
		INSERT INTO leave_requests (employee_id, start_date, end_date, type, reason, status, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		newRequest.EmployeeID, newRequest.StartDate, newRequest.EndDate, newRequest.Type,
		newRequest.Reason, newRequest.Status, newRequest.ApprovedBy,
	))
	if err != nil {
		return leave.LeaveRequest{}, wrap("create leave request", err)
	}
	return created, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id int64, patch leave.Patch) (leave.LeaveRequest, error) {
	var a assignments
	if patch.StartDate != nil {
		a.set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		a.set("end_date", *patch.EndDate)
	}
	if patch.Type != nil {
		a.set("type", *patch.Type)
	}
	if patch.Reason != nil {
		a.set("reason", *patch.Reason)
	}
	if patch.Status != nil {
		a.set("status", *patch.Status)
	}
	if patch.ApprovedBy != nil {
		a.set("approved_by", *patch.ApprovedBy)
	}
	if a.empty() {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)
	sql, args := a.update("leave_requests", id, leaveRequestColumns)
	updated, err := scanLeaveRequest(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, wrap("update leave request", err)
	}
	return updated, nil
}

// TransitionStatus implements leave.LeaveRequestRepository. The status guard
// lives in the WHERE clause so two approvers cannot both win.
func (r *leaveRequestRepositoryImpl) TransitionStatus(ctx context.Context, id int64, status leave.LeaveStatus, approvedBy string) (leave.LeaveRequest, error) {
	var result leave.LeaveRequest

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE leave_requests
			SET status = $1, approved_by = $2, updated_at = NOW()
			WHERE id = $3 AND status = $4
			RETURNING ` + leaveRequestColumns

		updated, err := scanLeaveRequest(q.QueryRow(ctx, query, status, approvedBy, id, leave.StatusPending))
		if err == nil {
			result = updated
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return wrap("transition leave request", err)
		}

		// Nothing matched: either the id is unknown or the request was already processed.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	})
	return result, err
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return wrap("delete leave request", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
