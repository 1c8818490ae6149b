package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var may1 = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	svc            attendance.AttendanceService
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

// newFixture freezes the clock at 2024-05-01 14:30 UTC, well past the cutoff.
func newFixture() fixture {
	store := memory.NewStore()
	attendanceRepo := memory.NewAttendanceRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	svc := NewAttendanceService(attendanceRepo, employeeRepo, Options{
		Now: func() time.Time { return time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC) },
	})
	return fixture{svc: svc, attendanceRepo: attendanceRepo, employeeRepo: employeeRepo}
}

func (f fixture) hire(t *testing.T, name, dept string, status employee.Status) employee.Employee {
	t.Helper()
	e, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		Name: name, Department: dept, JoinDate: may1, Status: status,
	})
	require.NoError(t, err)
	return e
}

func ids(rows []attendance.Attendance) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestGetAttendanceForDate_OneRowPerActiveEmployeeAndIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.hire(t, "A", "Sales", employee.StatusActive)
	f.hire(t, "B", "Sales", employee.StatusArchived)
	f.hire(t, "C", "Engineering", employee.StatusActive)

	first, err := f.svc.GetAttendanceForDate(ctx, may1)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := f.svc.GetAttendanceForDate(ctx, may1)
	require.NoError(t, err)
	assert.Equal(t, ids(first), ids(second))

	for _, r := range first {
		assert.Equal(t, attendance.StatusAbsent, r.Status)
		assert.Nil(t, r.CheckIn)
		assert.Nil(t, r.CheckOut)
	}
}

func TestGetAttendanceForDate_KeepsExistingRows(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.hire(t, "A", "Sales", employee.StatusActive)
	f.hire(t, "B", "Sales", employee.StatusActive)

	clock := "08:45:00"
	existing, err := f.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: a.ID, Date: may1, CheckIn: &clock, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	rows, err := f.svc.GetAttendanceForDate(ctx, may1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, existing.ID, rows[0].ID)
	assert.Equal(t, attendance.StatusPresent, rows[0].Status)
	assert.Equal(t, attendance.StatusAbsent, rows[1].Status)
}

func TestGetAttendanceForDate_IDsAreMonotonicAcrossDates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.hire(t, "A", "Sales", employee.StatusActive)
	f.hire(t, "B", "Sales", employee.StatusActive)

	day1, err := f.svc.GetAttendanceForDate(ctx, may1)
	require.NoError(t, err)
	day2, err := f.svc.GetAttendanceForDate(ctx, may1.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, ids(day1))
	assert.Equal(t, []int64{3, 4}, ids(day2))
}

func TestGetAttendanceForDate_ConcurrentCallsDoNotDuplicate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, n := range []string{"A", "B", "C", "D"} {
		f.hire(t, n, "Sales", employee.StatusActive)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.GetAttendanceForDate(ctx, may1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := f.attendanceRepo.GetByDate(ctx, may1)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestCheckOut_WithoutRowIsNotFound(t *testing.T) {
	f := newFixture()
	emp := f.hire(t, "A", "Sales", employee.StatusActive)

	_, err := f.svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID, Date: "2024-05-01", Time: "17:00:00",
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	rows, err := f.attendanceRepo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows, "check-out must not materialize a row")
}

func TestCheckInThenCheckOut_SingleRow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	emp := f.hire(t, "A", "Sales", employee.StatusActive)

	in, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID, Date: "2024-05-01", Time: "08:55:00"})
	require.NoError(t, err)
	out, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: emp.ID, Date: "2024-05-01", Time: "17:05:00"})
	require.NoError(t, err)

	assert.Equal(t, in.ID, out.ID)
	require.NotNil(t, out.CheckIn)
	require.NotNil(t, out.CheckOut)
	assert.Equal(t, "08:55:00", *out.CheckIn)
	assert.Equal(t, "17:05:00", *out.CheckOut)
	assert.Equal(t, "present", out.Status)

	rows, err := f.attendanceRepo.GetByDate(ctx, may1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCheckIn_OverwritesMaterializedAbsentRow(t *testing.T) {
	// Ana (id 7, Sales) has no row on 2024-05-01; listing the day gives her an
	// absent row, and a 09:15 check-in turns it into a late one.
	f := newFixture()
	ctx := context.Background()
	for _, n := range []string{"P1", "P2", "P3", "P4", "P5", "P6"} {
		f.hire(t, n, "Engineering", employee.StatusArchived)
	}
	ana := f.hire(t, "Ana", "Sales", employee.StatusActive)
	require.Equal(t, int64(7), ana.ID)

	rows, err := f.svc.GetAttendanceForDate(ctx, may1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	absent := rows[0]
	assert.Equal(t, int64(7), absent.EmployeeID)
	assert.Equal(t, "2024-05-01", validator.FormatDate(absent.Date))
	assert.Nil(t, absent.CheckIn)
	assert.Nil(t, absent.CheckOut)
	assert.Equal(t, attendance.StatusAbsent, absent.Status)

	got, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: 7, Date: "2024-05-01", Time: "09:15:00"})
	require.NoError(t, err)
	assert.Equal(t, absent.ID, got.ID)
	assert.Equal(t, "late", got.Status)
	require.NotNil(t, got.CheckIn)
	assert.Equal(t, "09:15:00", *got.CheckIn)
	assert.Equal(t, "Ana", got.EmployeeName)
}

func TestCheckIn_LatenessUsesCheckInTimeNotWallClock(t *testing.T) {
	// The fixture clock reads 14:30; a backdated 08:30 check-in is still on time.
	f := newFixture()
	emp := f.hire(t, "A", "Sales", employee.StatusActive)

	got, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID, Date: "2024-04-12", Time: "08:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "present", got.Status)
	assert.Equal(t, "2024-04-12", got.Date)
}

func TestCheckIn_DefaultsToNowAndExplicitStatusWins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	emp := f.hire(t, "A", "Sales", employee.StatusActive)

	got, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.Date)
	require.NotNil(t, got.CheckIn)
	assert.Equal(t, "14:30:00", *got.CheckIn)
	assert.Equal(t, "late", got.Status)

	got, err = f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID, Status: "leave"})
	require.NoError(t, err)
	assert.Equal(t, "leave", got.Status)
}

func TestCheckIn_UnknownOrArchivedEmployee(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	archived := f.hire(t, "Gone", "Sales", employee.StatusArchived)

	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: 99})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: archived.ID})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotActive)
}

func TestCheckIn_HonoursConfiguredCutoff(t *testing.T) {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	policy, err := attendance.NewLatenessPolicy("08:30")
	require.NoError(t, err)
	svc := NewAttendanceService(memory.NewAttendanceRepository(store), employeeRepo, Options{Lateness: &policy})

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{Name: "A", JoinDate: may1})
	require.NoError(t, err)

	got, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: emp.ID, Date: "2024-05-01", Time: "08:45:00"})
	require.NoError(t, err)
	assert.Equal(t, "late", got.Status)
}

func TestListAttendance_JoinFilterAndCounts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ana := f.hire(t, "Ana Lopez", "Sales", employee.StatusActive)
	dan := f.hire(t, "Daniel Kim", "Engineering", employee.StatusActive)
	f.hire(t, "Grace Hopper", "Engineering", employee.StatusActive)

	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: ana.ID, Date: "2024-05-01", Time: "08:00:00"})
	require.NoError(t, err)
	_, err = f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: dan.ID, Date: "2024-05-01", Time: "09:30:00"})
	require.NoError(t, err)

	got, err := f.svc.ListAttendance(ctx, attendance.AttendanceFilter{Date: "2024-05-01", Search: "an"})
	require.NoError(t, err)

	require.Len(t, got.Records, 2)
	assert.Equal(t, "Ana Lopez", got.Records[0].EmployeeName)
	assert.Equal(t, "Daniel Kim", got.Records[1].EmployeeName)
	assert.Equal(t, attendance.StatusCounts{Present: 1, Late: 1, Absent: 1}, got.Counts)

	late, err := f.svc.ListAttendance(ctx, attendance.AttendanceFilter{Date: "2024-05-01", Status: "late"})
	require.NoError(t, err)
	require.Len(t, late.Records, 1)
	assert.Equal(t, dan.ID, late.Records[0].EmployeeID)
	assert.Equal(t, "Engineering", late.Records[0].Department)
}

func TestListAttendance_DropsRowsOfArchivedEmployees(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	emp := f.hire(t, "A", "Sales", employee.StatusActive)
	_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID, Date: "2024-05-01", Time: "08:00:00"})
	require.NoError(t, err)

	archived := employee.StatusArchived
	_, err = f.employeeRepo.Update(ctx, emp.ID, employee.Patch{Status: &archived})
	require.NoError(t, err)

	got, err := f.svc.ListAttendance(ctx, attendance.AttendanceFilter{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Empty(t, got.Records)
}

func TestGetEmployeeHistory_NewestFirstWithLimit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	emp := f.hire(t, "A", "Sales", employee.StatusActive)

	for _, d := range []string{"2024-04-01", "2024-04-03", "2024-04-02"} {
		_, err := f.svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID, Date: d, Time: "08:00:00"})
		require.NoError(t, err)
	}

	got, err := f.svc.GetEmployeeHistory(ctx, emp.ID, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-04-03", got[0].Date)
	assert.Equal(t, "2024-04-02", got[1].Date)

	_, err = f.svc.GetEmployeeHistory(ctx, 404, 0)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
