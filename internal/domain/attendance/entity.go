package attendance

import (
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
)

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	CheckIn    *string // HH:MM:SS
	CheckOut   *string // HH:MM:SS
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// Absent builds the default row materialized for an employee with no record on date.
func Absent(employeeID int64, date time.Time) Attendance {
	return Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     StatusAbsent,
	}
}

// Patch carries a partial update. A non-nil CheckIn or CheckOut is written,
// including when it points at a value being replaced.
type Patch struct {
	CheckIn  *string
	CheckOut *string
	Status   *Status
}

func (p Patch) ApplyTo(a *Attendance) {
	if p.CheckIn != nil {
		v := *p.CheckIn
		a.CheckIn = &v
	}
	if p.CheckOut != nil {
		v := *p.CheckOut
		a.CheckOut = &v
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

// Row is an attendance record joined to the employee it belongs to.
type Row struct {
	Attendance
	Employee employee.Employee
}
