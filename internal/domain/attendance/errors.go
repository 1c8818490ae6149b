package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance record already exists for this employee and date")
	ErrEmployeeNotActive  = errors.New("employee is archived")
	ErrInvalidCutoff      = errors.New("lateness cutoff must be in HH:MM format")
)
