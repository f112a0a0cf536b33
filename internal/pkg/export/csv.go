package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/brightops/peoplehub-backend-go/internal/domain/analytics"
)

// WriteEmployeeStatsCSV streams per-employee leave statistics as CSV. Rows
// follow the order of stats, which the aggregator already sorts.
func WriteEmployeeStatsCSV(w io.Writer, stats []analytics.EmployeeLeaveStats, year int) error {
	cw := csv.NewWriter(w)

	header := []string{
		"Employee",
		"Department",
		"Date of Joining",
		fmt.Sprintf("Entitled (%d)", year),
		"Used",
		"Balance",
		"Pending Requests",
		"Working Days",
		"Leave Taken",
		"Attendance %",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range stats {
		record := []string{
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
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatDays trims trailing zeros so whole-day values render as "12" and
// half-day values as "12.5".
func formatDays(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
