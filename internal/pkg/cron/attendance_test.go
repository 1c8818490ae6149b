package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeToday_CreatesAbsentRows(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	departmentRepo := memory.NewDepartmentRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)
	_, err := fixtures.Seed(ctx, departmentRepo, employeeRepo, leaveRepo)
	require.NoError(t, err)

	now := time.Date(2024, time.May, 1, 6, 0, 0, 0, time.UTC)
	svc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, attendanceService.Options{
		Now: func() time.Time { return now },
	})

	scheduler := NewScheduler()
	NewAttendanceJobs(svc).RegisterJobs(scheduler)
	assert.Equal(t, []string{"materialize_today_attendance"}, scheduler.Jobs())

	assert.Zero(t, scheduler.RunOnce(ctx))
	assert.Zero(t, scheduler.RunOnce(ctx))

	rows, err := attendanceRepo.GetByDate(ctx, now)
	require.NoError(t, err)
	assert.Len(t, rows, 9, "one row per active employee, even after two runs")
	for _, r := range rows {
		assert.Equal(t, attendance.StatusAbsent, r.Status)
	}
}

func TestScheduler_RunOnceCountsFailures(t *testing.T) {
	scheduler := NewScheduler()
	scheduler.AddJob("ok", time.Hour, func(ctx context.Context) error { return nil })
	scheduler.AddJob("broken", time.Hour, func(ctx context.Context) error { return errors.New("boom") })

	assert.Equal(t, 1, scheduler.RunOnce(context.Background()))
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	var runs atomic.Int32
	scheduler := NewScheduler()
	scheduler.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	scheduler.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)
	scheduler.Stop()

	assert.Equal(t, int32(1), runs.Load())
}
