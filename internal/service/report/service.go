package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportService(attendanceService attendance.AttendanceService) report.ReportService {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
	}
}

// ExportAttendance implements report.ReportService.
//
// Layout: a title row, the header row, one row per active employee, then a
// blank row and a status summary.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, req report.ExportAttendanceRequest) (*bytes.Buffer, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	sheetData, err := s.attendanceService.ListAttendance(ctx, attendance.AttendanceFilter{Date: strings.TrimSpace(req.Date)})
	if err != nil {
		return nil, "", fmt.Errorf("failed to load attendance rows: %w", err)
	}
	day := sheetData.Date

	f := excelize.NewFile()
	defer f.Close()

	sheet := report.SheetName
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", report.ErrExportFailed, err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "C", "E", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Attendance %s", day))
	lastCol := colName(len(report.Columns) - 1)
	f.MergeCell(sheet, "A1", cell(lastCol, 1))

	for i, title := range report.Columns {
		f.SetCellValue(sheet, cell(colName(i), 2), title)
	}
	f.SetCellStyle(sheet, "A2", cell(lastCol, 2), headerStyle)

	line := 3
	for _, r := range sheetData.Records {
		values := []string{r.EmployeeName, r.Department, r.Status, clock(r.CheckIn), clock(r.CheckOut)}
		for i, v := range values {
			f.SetCellValue(sheet, cell(colName(i), line), v)
		}
		line++
	}

	counts := sheetData.Counts
	line++
	summary := []struct {
		label string
		value int
	}{
		{"Present", counts.Present},
		{"Late", counts.Late},
		{"Absent", counts.Absent},
		{"Leave", counts.Leave},
		{"Total", sheetData.Total},
	}
	for _, item := range summary {
		f.SetCellValue(sheet, cell("A", line), item.label)
		f.SetCellValue(sheet, cell("B", line), item.value)
		line++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		slog.Error("Failed to write attendance workbook", "date", day, "error", err)
		return nil, "", fmt.Errorf("%w: %w", report.ErrExportFailed, err)
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", day)
	return buf, filename, nil
}

func clock(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
