package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/filter"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const defaultHistoryLimit = 10

// Options tunes the service. Zero values fall back to UTC, a 09:00 cutoff and time.Now.
type Options struct {
	Location *time.Location
	Lateness *attendance.LatenessPolicy
	Now      func() time.Time
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	lateness       attendance.LatenessPolicy
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, opts Options) attendance.AttendanceService {
	s := &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            opts.Location,
		now:            opts.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.Lateness != nil {
		s.lateness = *opts.Lateness
	} else {
		s.lateness, _ = attendance.NewLatenessPolicy(attendance.DefaultLateCutoff)
	}
	return s
}

// localNow is the current instant in the configured zone.
func (s *AttendanceServiceImpl) localNow() time.Time {
	return s.now().In(s.loc)
}

func (s *AttendanceServiceImpl) today() time.Time {
	return validator.DateOf(s.localNow())
}

// resolveDate parses an optional YYYY-MM-DD value, defaulting to today.
func (s *AttendanceServiceImpl) resolveDate(value string) time.Time {
	if d, err := validator.ParseDate(value); err == nil {
		return d
	}
	return s.today()
}

// rowsForDate returns one row per active employee for date, in active-employee
// order. Employees without a row get an absent one through FindOrCreate, so
// concurrent callers never materialize duplicates.
func (s *AttendanceServiceImpl) rowsForDate(ctx context.Context, date time.Time) ([]attendance.Row, error) {
	date = validator.DateOf(date)

	var (
		employees []employee.Employee
		existing  []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		existing, err = s.attendanceRepo.GetByDate(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to load attendance for %s: %w", validator.FormatDate(date), err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byEmployee := filter.Index(existing, func(a attendance.Attendance) int64 { return a.EmployeeID })

	active := employee.Active(employees)
	rows := make([]attendance.Row, 0, len(active))
	materialized := 0
	for _, emp := range active {
		record, ok := byEmployee[emp.ID]
		if !ok {
			var created bool
			var err error
			record, created, err = s.attendanceRepo.FindOrCreate(ctx, attendance.Absent(emp.ID, date))
			if err != nil {
				return nil, fmt.Errorf("failed to materialize attendance for employee %d: %w", emp.ID, err)
			}
			if created {
				materialized++
			}
		}
		rows = append(rows, attendance.Row{Attendance: record, Employee: emp})
	}

	if materialized > 0 {
		slog.Info("Materialized absent attendance rows", "date", validator.FormatDate(date), "count", materialized)
	}
	return rows, nil
}

// GetAttendanceForDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendanceForDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	rows, err := s.rowsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]attendance.Attendance, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Attendance)
	}
	return out, nil
}

// GetTodaysAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodaysAttendance(ctx context.Context) ([]attendance.Attendance, error) {
	return s.GetAttendanceForDate(ctx, s.today())
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, f attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := f.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	date := s.resolveDate(f.Date)

	rows, err := s.rowsForDate(ctx, date)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	all := make([]attendance.Attendance, 0, len(rows))
	for _, r := range rows {
		all = append(all, r.Attendance)
	}

	matched := filter.Apply(rows,
		filter.Contains(f.Search, func(r attendance.Row) string { return r.Employee.Name }),
		filter.Equals(attendance.Status(f.Status), func(r attendance.Row) attendance.Status { return r.Status }),
	)

	result := attendance.ListAttendanceResponse{
		Date:    validator.FormatDate(date),
		Records: make([]attendance.AttendanceResponse, 0, len(matched)),
		Total:   len(matched),
		Counts:  attendance.CountStatuses(all),
	}
	for _, r := range matched {
		result.Records = append(result.Records, attendance.NewRowResponse(r))
	}
	return result, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive() {
		return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotActive
	}

	date := s.resolveDate(req.Date)
	clock := strings.TrimSpace(req.Time)
	if clock == "" {
		clock = s.localNow().Format(validator.ClockLayout)
	}

	status := attendance.Status(req.Status)
	if status == "" {
		status, err = s.lateness.Classify(clock)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	patch := attendance.Patch{CheckIn: &clock, Status: &status}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to find attendance: %w", err)
	}

	var record attendance.Attendance
	if existing != nil {
		record, err = s.attendanceRepo.Update(ctx, existing.ID, patch)
	} else {
		var created bool
		record, created, err = s.attendanceRepo.FindOrCreate(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			CheckIn:    &clock,
			Status:     status,
		})
		if err == nil && !created {
			// Someone materialized the row between our read and the insert.
			record, err = s.attendanceRepo.Update(ctx, record.ID, patch)
		}
	}
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check in: %w", err)
	}

	slog.Info("Employee checked in", "employee_id", emp.ID, "date", validator.FormatDate(date), "status", record.Status)
	resp := attendance.NewRowResponse(attendance.Row{Attendance: record, Employee: emp})
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := s.resolveDate(req.Date)
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to find attendance: %w", err)
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("employee %d on %s: %w",
			req.EmployeeID, validator.FormatDate(date), attendance.ErrAttendanceNotFound)
	}

	clock := strings.TrimSpace(req.Time)
	if clock == "" {
		clock = s.localNow().Format(validator.ClockLayout)
	}

	record, err := s.attendanceRepo.Update(ctx, existing.ID, attendance.Patch{CheckOut: &clock})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check out: %w", err)
	}

	resp := attendance.NewAttendanceResponse(record)
	if emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID); err == nil {
		resp = attendance.NewRowResponse(attendance.Row{Attendance: record, Employee: emp})
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return resp, nil
}

// GetEmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID int64, limit int) ([]attendance.AttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.attendanceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance history: %w", err)
	}
	if len(records) > limit {
		records = records[:limit]
	}

	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, attendance.NewAttendanceResponse(r))
	}
	return out, nil
}
