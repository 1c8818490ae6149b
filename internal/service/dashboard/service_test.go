package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type failingLeaveRepo struct {
	leave.LeaveRequestRepository
}

func (failingLeaveRepo) GetPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return nil, errors.New("connection refused")
}

func TestGetDashboard_Aggregates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)

	var ids []int64
	for i := 1; i <= 8; i++ {
		e, err := employeeRepo.Create(ctx, employee.Employee{Name: fmt.Sprintf("Employee %d", i), Department: "Sales", JoinDate: today})
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}
	archived := employee.StatusArchived
	_, err := employeeRepo.Update(ctx, ids[7], employee.Patch{Status: &archived})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := leaveRepo.Create(ctx, leave.LeaveRequest{
			EmployeeID: ids[i], StartDate: today, EndDate: today, Type: leave.TypeSick, Status: leave.StatusPending,
		})
		require.NoError(t, err)
	}

	attendances := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, attendanceService.Options{
		Now: func() time.Time { return today.Add(10 * time.Hour) },
	})
	_, err = attendances.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: ids[0], Time: "08:50:00"})
	require.NoError(t, err)
	_, err = attendances.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: ids[1], Time: "09:20:00"})
	require.NoError(t, err)

	svc := NewDashboardService(employeeRepo, leaveRepo, attendances)
	got, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", got.Date)
	assert.Equal(t, 7, got.TotalEmployees)
	assert.Equal(t, 1, got.PresentToday)
	assert.Equal(t, 1, got.LateToday)
	assert.Equal(t, 5, got.AbsentToday)
	assert.Equal(t, 7, got.PendingLeave)
	assert.Len(t, got.RecentEmployees, 6)
	assert.Len(t, got.PendingRequests, 6)
	assert.Equal(t, "Employee 1", got.PendingRequests[0].EmployeeName)
}

func TestGetDashboard_FailsFast(t *testing.T) {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendances := attendanceService.NewAttendanceService(memory.NewAttendanceRepository(store), employeeRepo, attendanceService.Options{})

	svc := NewDashboardService(employeeRepo, failingLeaveRepo{}, attendances)
	_, err := svc.GetDashboard(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pending leave requests")
}
