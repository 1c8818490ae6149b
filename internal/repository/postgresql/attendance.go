package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Clock columns are TIME in the schema and HH:MM:SS strings in Go.
const attendanceColumns = `id, employee_id, date,
	to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
	status, created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("query attendance", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, wrap("scan attendance", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate attendance", err)
	}
	return records, nil
}

// GetAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetAll(ctx context.Context) ([]attendance.Attendance, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendances ORDER BY id`)
}

// GetByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE date = $1 ORDER BY id`, date)
}

// GetByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]attendance.Attendance, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE employee_id = $1 ORDER BY date DESC, id DESC`, employeeID)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, wrap("get attendance", err)
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendances WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get attendance", err)
	}
	return &a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in, check_out, status)
		VALUES ($1, $2, $3::time, $4::time, $5)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.EmployeeID, newAttendance.Date, newAttendance.CheckIn, newAttendance.CheckOut, newAttendance.Status,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, wrap("create attendance", err)
	}
	return created, nil
}

// FindOrCreate implements attendance.AttendanceRepository. The unique
// (employee_id, date) constraint arbitrates concurrent inserts.
func (r *attendanceRepositoryImpl) FindOrCreate(ctx context.Context, seed attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in, check_out, status)
		VALUES ($1, $2, $3::time, $4::time, $5)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		seed.EmployeeID, seed.Date, seed.CheckIn, seed.CheckOut, seed.Status,
	))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, false, wrap("insert attendance", err)
	}

	existing, err := r.GetByEmployeeAndDate(ctx, seed.EmployeeID, seed.Date)
	if err != nil {
		return attendance.Attendance{}, false, err
	}
	if existing == nil {
		// Deleted between the conflict and the read.
		return attendance.Attendance{}, false, attendance.ErrAttendanceNotFound
	}
	return *existing, false, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id int64, patch attendance.Patch) (attendance.Attendance, error) {
	var a assignments
	if patch.CheckIn != nil {
		a.set("check_in", *patch.CheckIn)
	}
	if patch.CheckOut != nil {
		a.set("check_out", *patch.CheckOut)
	}
	if patch.Status != nil {
		a.set("status", *patch.Status)
	}
	if a.empty() {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)
	sql, args := a.update("attendances", id, attendanceColumns)
	updated, err := scanAttendance(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, wrap("update attendance", err)
	}
	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return wrap("delete attendance", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
