package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// GetAttendanceForDate returns one row per active employee for date,
	// materializing an absent row for anyone who has none yet.
	GetAttendanceForDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// GetTodaysAttendance is GetAttendanceForDate for today in the configured zone.
	GetTodaysAttendance(ctx context.Context) ([]Attendance, error)

	// ListAttendance serves the attendance page: joined rows, filters and status counts.
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetEmployeeHistory returns up to limit rows, newest date first.
	GetEmployeeHistory(ctx context.Context, employeeID int64, limit int) ([]AttendanceResponse, error)
}
