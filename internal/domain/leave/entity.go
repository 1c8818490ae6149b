package leave

import "time"

type LeaveType string

const (
	TypeVacation LeaveType = "vacation"
	TypeSick     LeaveType = "sick"
	TypePersonal LeaveType = "personal"
)

func (t LeaveType) IsValid() bool {
	return t == TypeVacation || t == TypeSick || t == TypePersonal
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsTerminal reports whether no further transition is allowed.
func (s LeaveStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	Type       LeaveType
	Reason     *string
	Status     LeaveStatus
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (l LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// Days counts the calendar days covered, inclusive of both ends.
func (l LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

type Patch struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *LeaveType
	Reason     *string
	Status     *LeaveStatus
	ApprovedBy *string
}

func (p Patch) ApplyTo(l *LeaveRequest) {
	if p.StartDate != nil {
		l.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		l.EndDate = *p.EndDate
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Reason != nil {
		v := *p.Reason
		l.Reason = &v
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.ApprovedBy != nil {
		v := *p.ApprovedBy
		l.ApprovedBy = &v
	}
}
