package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type attendanceRepositoryImpl struct {
	s *Store
}

func NewAttendanceRepository(s *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{s: s}
}

func cloneAttendance(a attendance.Attendance) attendance.Attendance {
	a.CheckIn = cloneString(a.CheckIn)
	a.CheckOut = cloneString(a.CheckOut)
	return a
}

func (r *attendanceRepositoryImpl) list(keep func(attendance.Attendance) bool) []attendance.Attendance {
	t := r.s.attendances
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]attendance.Attendance, 0)
	for _, a := range t.sorted() {
		if keep == nil || keep(a) {
			out = append(out, cloneAttendance(a))
		}
	}
	return out
}

func (r *attendanceRepositoryImpl) GetAll(ctx context.Context) ([]attendance.Attendance, error) {
	return r.list(nil), nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	t := r.s.attendances
	t.mu.RLock()
	defer t.mu.RUnlock()

	a, ok := t.rows[id]
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("attendance with id %d: %w", id, attendance.ErrAttendanceNotFound)
	}
	return cloneAttendance(a), nil
}

func (r *attendanceRepositoryImpl) GetByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	day := validator.DateOf(date)
	return r.list(func(a attendance.Attendance) bool { return a.Date.Equal(day) }), nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]attendance.Attendance, error) {
	rows := r.list(func(a attendance.Attendance) bool { return a.EmployeeID == employeeID })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}

// findLocked scans for the (employeeID, date) row. Callers must hold mu.
func (r *attendanceRepositoryImpl) findLocked(employeeID int64, day time.Time) (attendance.Attendance, bool) {
	for _, a := range r.s.attendances.rows {
		if a.EmployeeID == employeeID && a.Date.Equal(day) {
			return a, true
		}
	}
	return attendance.Attendance{}, false
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	t := r.s.attendances
	t.mu.RLock()
	defer t.mu.RUnlock()

	a, ok := r.findLocked(employeeID, validator.DateOf(date))
	if !ok {
		return nil, nil
	}
	found := cloneAttendance(a)
	return &found, nil
}

// insertLocked stores a new row. Callers must hold mu for writing.
func (r *attendanceRepositoryImpl) insertLocked(a attendance.Attendance) attendance.Attendance {
	now := r.s.timestamp()
	a = cloneAttendance(a)
	a.ID = r.s.attendances.allocate()
	a.Date = validator.DateOf(a.Date)
	a.CreatedAt = now
	a.UpdatedAt = now
	r.s.attendances.rows[a.ID] = a
	return cloneAttendance(a)
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	t := r.s.attendances
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := r.findLocked(newAttendance.EmployeeID, validator.DateOf(newAttendance.Date)); exists {
		return attendance.Attendance{}, fmt.Errorf("employee %d on %s: %w",
			newAttendance.EmployeeID, validator.FormatDate(newAttendance.Date), attendance.ErrAttendanceExists)
	}
	return r.insertLocked(newAttendance), nil
}

func (r *attendanceRepositoryImpl) FindOrCreate(ctx context.Context, seed attendance.Attendance) (attendance.Attendance, bool, error) {
	t := r.s.attendances
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := r.findLocked(seed.EmployeeID, validator.DateOf(seed.Date)); ok {
		return cloneAttendance(existing), false, nil
	}
	return r.insertLocked(seed), true, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, id int64, patch attendance.Patch) (attendance.Attendance, error) {
	t := r.s.attendances
	t.mu.Lock()
	defer t.mu.Unlock()

	a, ok := t.rows[id]
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("attendance with id %d: %w", id, attendance.ErrAttendanceNotFound)
	}
	patch.ApplyTo(&a)
	a.UpdatedAt = r.s.timestamp()
	t.rows[id] = a
	return cloneAttendance(a), nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	t := r.s.attendances
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("attendance with id %d: %w", id, attendance.ErrAttendanceNotFound)
	}
	delete(t.rows, id)
	return nil
}
