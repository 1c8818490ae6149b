package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetAll(ctx context.Context) ([]Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	GetByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	// GetByEmployeeID returns the employee's rows, newest date first.
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]Attendance, error)
	// GetByEmployeeAndDate returns nil, nil when no row exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	Update(ctx context.Context, id int64, patch Patch) (Attendance, error)
	Delete(ctx context.Context, id int64) error

	// FindOrCreate returns the row for (seed.EmployeeID, seed.Date), inserting
	// seed when none exists. created reports whether seed was inserted.
	FindOrCreate(ctx context.Context, seed Attendance) (row Attendance, created bool, err error)
}
