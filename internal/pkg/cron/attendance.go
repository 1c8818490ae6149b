package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
)

const materializeInterval = 1 * time.Hour

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("materialize_today_attendance", materializeInterval, j.MaterializeToday)
}

// MaterializeToday makes sure every active employee has a row for today, so
// the attendance page and the dashboard never synthesize on a cold read.
func (j *AttendanceJobs) MaterializeToday(ctx context.Context) error {
	records, err := j.attendanceService.GetTodaysAttendance(ctx)
	if err != nil {
		return fmt.Errorf("failed to materialize today's attendance: %w", err)
	}

	absent := 0
	for _, r := range records {
		if r.Status == attendance.StatusAbsent {
			absent++
		}
	}
	slog.Info("Cron: Attendance materialized", "rows", len(records), "absent", absent)
	return nil
}
