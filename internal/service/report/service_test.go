package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/teamhub-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportAttendance_WritesReadableWorkbook(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendances := attendanceService.NewAttendanceService(memory.NewAttendanceRepository(store), employeeRepo, attendanceService.Options{})

	ana, err := employeeRepo.Create(ctx, employee.Employee{Name: "Ana Lopez", Department: "Sales", JoinDate: day})
	require.NoError(t, err)
	_, err = employeeRepo.Create(ctx, employee.Employee{Name: "Daniel Kim", Department: "Engineering", JoinDate: day})
	require.NoError(t, err)

	_, err = attendances.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: ana.ID, Date: "2024-05-01", Time: "09:15:00"})
	require.NoError(t, err)

	buf, filename, err := NewReportService(attendances).ExportAttendance(ctx, report.ExportAttendanceRequest{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, "attendance_2024-05-01.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)

	assert.Equal(t, "Attendance 2024-05-01", rows[0][0])
	assert.Equal(t, report.Columns, rows[1])
	assert.Equal(t, []string{"Ana Lopez", "Sales", "late", "09:15:00", "-"}, rows[2])
	assert.Equal(t, []string{"Daniel Kim", "Engineering", "absent", "-", "-"}, rows[3])

	late, err := f.GetCellValue(report.SheetName, "B7")
	require.NoError(t, err)
	assert.Equal(t, "1", late)
	total, err := f.GetCellValue(report.SheetName, "B10")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestExportAttendance_RejectsMalformedDate(t *testing.T) {
	store := memory.NewStore()
	attendances := attendanceService.NewAttendanceService(memory.NewAttendanceRepository(store), memory.NewEmployeeRepository(store), attendanceService.Options{})

	_, _, err := NewReportService(attendances).ExportAttendance(context.Background(), report.ExportAttendanceRequest{Date: "05/01/2024"})
	assert.Error(t, err)
}
