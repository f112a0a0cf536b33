package export

import (
	"fmt"
	"io"

	"github.com/brightops/peoplehub-backend-go/internal/domain/analytics"
	"github.com/jung-kurt/gofpdf"
)

// WriteEmployeeStatsPDF renders the per-employee leave statistics table as a
// landscape A4 report.
func WriteEmployeeStatsPDF(w io.Writer, stats []analytics.EmployeeLeaveStats, year int) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Leave Report %d", year))
	pdf.Ln(12)

	colWidths := []float64{55, 40, 28, 22, 18, 20, 22, 26, 24, 26}
	headers := []string{
		"Employee", "Department", "Joined", "Entitled", "Used",
		"Balance", "Pending", "Working Days", "Leave Taken", "Attendance %",
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range stats {
		cells := []string{
			s.EmployeeName,
			s.DepartmentName,
			s.DateOfJoining,
			formatDays(s.TotalEntitled),
			formatDays(s.TotalUsed),
			formatDays(s.TotalBalance),
			fmt.Sprintf("%d", s.PendingRequests),
			fmt.Sprintf("%d", s.TotalWorkingDays),
			formatDays(s.LeaveTaken),
			fmt.Sprintf("%.1f", s.AttendancePercentage),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
