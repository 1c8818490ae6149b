package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func createEmployee(t *testing.T, db *database.DB, name string) employee.Employee {
	t.Helper()
	emp, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		Name: name, Email: "x@example.com", Phone: "555-123-4567", Role: "Engineer",
		Department: "Engineering", JoinDate: day,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository_RoundTrip(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	created := createEmployee(t, setup.DB, "Ana Lopez")
	assert.Equal(t, employee.StatusActive, created.Status)
	assert.True(t, created.JoinDate.Equal(day))

	archived := employee.StatusArchived
	updated, err := repo.Update(ctx, created.ID, employee.Patch{Name: strPtr("Ana L."), Status: &archived})
	require.NoError(t, err)
	assert.Equal(t, "Ana L.", updated.Name)
	assert.Equal(t, "x@example.com", updated.Email)
	assert.False(t, updated.IsActive())

	byDept, err := repo.GetByDepartment(ctx, "Engineering")
	require.NoError(t, err)
	assert.Len(t, byDept, 1)

	_, err = repo.Update(ctx, 9999, employee.Patch{Name: strPtr("nobody")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 9999), employee.ErrEmployeeNotFound)
}

func TestDepartmentRepository_UniqueName(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(setup.DB)

	eng, err := repo.Create(ctx, department.Department{Name: "Engineering", Head: "Grace Hopper"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, department.Department{Name: "Sales", Head: "Ana Lopez"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, department.Department{Name: "Engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
	_, err = repo.Update(ctx, eng.ID, department.Patch{Name: strPtr("Sales")})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	got, err := repo.GetByName(ctx, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, eng.ID, got.ID)
	assert.Zero(t, got.EmployeeCount)
}

func TestAttendanceRepository_FindOrCreateConcurrent(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)
	emp := createEmployee(t, setup.DB, "Ana Lopez")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = map[int64]bool{}
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			row, ok, err := repo.FindOrCreate(ctx, attendance.Absent(emp.ID, day))
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			ids[row.ID] = true
			if ok {
				created++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Len(t, ids, 1)
}

func TestAttendanceRepository_ClockRoundTrip(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)
	emp := createEmployee(t, setup.DB, "Ana Lopez")

	row, created, err := repo.FindOrCreate(ctx, attendance.Absent(emp.ID, day))
	require.NoError(t, err)
	require.True(t, created)
	assert.Nil(t, row.CheckIn)

	late := attendance.StatusLate
	updated, err := repo.Update(ctx, row.ID, attendance.Patch{CheckIn: strPtr("09:15:00"), Status: &late})
	require.NoError(t, err)
	require.NotNil(t, updated.CheckIn)
	assert.Equal(t, "09:15:00", *updated.CheckIn)
	assert.Nil(t, updated.CheckOut)
	assert.Equal(t, attendance.StatusLate, updated.Status)

	_, err = repo.Create(ctx, attendance.Absent(emp.ID, day))
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)

	missing, err := repo.GetByEmployeeAndDate(ctx, emp.ID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLeaveRequestRepository_TransitionOnce(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(setup.DB)
	emp := createEmployee(t, setup.DB, "Ana Lopez")

	req, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID, StartDate: day, EndDate: day.AddDate(0, 0, 2), Type: leave.TypeVacation,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, req.Status)
	assert.Nil(t, req.ApprovedBy)

	approved, err := repo.TransitionStatus(ctx, req.ID, leave.StatusApproved, "Maria Garcia")
	require.NoError(t, err)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "Maria Garcia", *approved.ApprovedBy)

	_, err = repo.TransitionStatus(ctx, req.ID, leave.StatusRejected, "Maria Garcia")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	_, err = repo.TransitionStatus(ctx, 9999, leave.StatusApproved, "Maria Garcia")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	pending, err := repo.GetPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
