package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

const (
	fallbackDepartment = "Unassigned"
	fallbackLeaveType  = "Unknown"
	fallbackTypeCode   = "??"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ComputeAnnualAnalytics rolls applications and balances for one year into
// the dashboard aggregates. Pure: the year is an explicit parameter and the
// caller is expected to pass records already scoped to it; applications
// whose start date falls outside the year are skipped defensively.
// Cancelled applications are excluded from every bucket.
func ComputeAnnualAnalytics(applications []ApplicationRecord, balances []BalanceRecord, year int) AnnualAnalytics {
	var inYear []ApplicationRecord
	for _, app := range applications {
		if app.StartDate.Year() == year {
			inYear = append(inYear, app)
		}
	}

	approved := 0
	for _, app := range inYear {
		if app.Status == string(leave.LeaveStatusApproved) {
			approved++
		}
	}

	return AnnualAnalytics{
		MonthlyTrends:         monthlyTrends(inYear),
		DepartmentUsage:       departmentUsage(inYear),
		LeaveTypeDistribution: leaveTypeDistribution(inYear),
		BalanceSummary:        balanceSummary(balances),
		TotalApplications:     len(inYear),
		ApprovedApplications:  approved,
	}
}

// monthlyTrends buckets day counts by start month and status. Output is
// always 12 entries, Jan through Dec, in calendar order.
func monthlyTrends(applications []ApplicationRecord) []MonthlyLeaveTrend {
	trends := make([]MonthlyLeaveTrend, len(monthNames))
	for i, name := range monthNames {
		trends[i] = MonthlyLeaveTrend{Month: name}
	}

	for _, app := range applications {
		idx := int(app.StartDate.Month()) - 1
		days, _ := app.DaysCount.Float64()
		switch leave.LeaveStatus(app.Status) {
		case leave.LeaveStatusApproved:
			trends[idx].Approved += days
		case leave.LeaveStatusPending:
			trends[idx].Pending += days
		case leave.LeaveStatusRejected:
			trends[idx].Rejected += days
		}
	}

	return trends
}

// departmentUsage groups approved applications by department name, summing
// days and counting distinct employees. Sorted by total days descending,
// name ascending on ties for a deterministic output order.
func departmentUsage(applications []ApplicationRecord) []DepartmentUsage {
	type deptAgg struct {
		totalDays decimal.Decimal
		employees map[string]struct{}
	}

	byDept := make(map[string]*deptAgg)
	var order []string

	for _, app := range applications {
		if app.Status != string(leave.LeaveStatusApproved) {
			continue
		}
		name := fallbackDepartment
		if app.DepartmentName != nil && *app.DepartmentName != "" {
			name = *app.DepartmentName
		}
		agg, ok := byDept[name]
		if !ok {
			agg = &deptAgg{totalDays: decimal.Zero, employees: make(map[string]struct{})}
			byDept[name] = agg
			order = append(order, name)
		}
		agg.totalDays = agg.totalDays.Add(app.DaysCount)
		if app.EmployeeID != "" {
			agg.employees[app.EmployeeID] = struct{}{}
		}
	}

	usage := make([]DepartmentUsage, 0, len(order))
	for _, name := range order {
		agg := byDept[name]
		usage = append(usage, DepartmentUsage{
			Department:    name,
			TotalDays:     roundDecimal(agg.totalDays),
			EmployeeCount: len(agg.employees),
		})
	}

	sort.SliceStable(usage, func(i, j int) bool {
		if usage[i].TotalDays != usage[j].TotalDays {
			return usage[i].TotalDays > usage[j].TotalDays
		}
		return usage[i].Department < usage[j].Department
	})

	return usage
}

// leaveTypeDistribution groups approved applications by leave type and
// computes each type's integer percentage share of total approved days.
// All percentages are 0 when the total is 0.
func leaveTypeDistribution(applications []ApplicationRecord) []LeaveTypeDistribution {
	type typeAgg struct {
		name      string
		code      string
		totalDays decimal.Decimal
	}

	byType := make(map[string]*typeAgg)
	var order []string

	for _, app := range applications {
		if app.Status != string(leave.LeaveStatusApproved) {
			continue
		}
		typeID := app.LeaveTypeID
		if typeID == "" {
			typeID = "unknown"
		}
		agg, ok := byType[typeID]
		if !ok {
			name := fallbackLeaveType
			if app.LeaveTypeName != nil && *app.LeaveTypeName != "" {
				name = *app.LeaveTypeName
			}
			code := fallbackTypeCode
			if app.LeaveTypeCode != nil && *app.LeaveTypeCode != "" {
				code = *app.LeaveTypeCode
			}
			agg = &typeAgg{name: name, code: code, totalDays: decimal.Zero}
			byType[typeID] = agg
			order = append(order, typeID)
		}
		agg.totalDays = agg.totalDays.Add(app.DaysCount)
	}

	total := decimal.Zero
	for _, id := range order {
		total = total.Add(byType[id].totalDays)
	}

	dist := make([]LeaveTypeDistribution, 0, len(order))
	for _, id := range order {
		agg := byType[id]
		percentage := 0
		if total.IsPositive() {
			share, _ := agg.totalDays.Div(total).Float64()
			percentage = int(math.Round(share * 100))
		}
		dist = append(dist, LeaveTypeDistribution{
			Name:       agg.name,
			Code:       agg.code,
			TotalDays:  roundDecimal(agg.totalDays),
			Percentage: percentage,
		})
	}

	sort.SliceStable(dist, func(i, j int) bool {
		if dist[i].TotalDays != dist[j].TotalDays {
			return dist[i].TotalDays > dist[j].TotalDays
		}
		return dist[i].Name < dist[j].Name
	})

	return dist
}

func balanceSummary(balances []BalanceRecord) BalanceSummary {
	totalEntitled := decimal.Zero
	totalUsed := decimal.Zero
	for _, b := range balances {
		totalEntitled = totalEntitled.Add(b.EntitledDays).Add(b.CarriedForwardDays).Add(b.AdjustedDays)
		totalUsed = totalUsed.Add(b.UsedDays)
	}

	utilization := 0
	if totalEntitled.IsPositive() {
		rate, _ := totalUsed.Div(totalEntitled).Float64()
		utilization = int(math.Round(rate * 100))
	}

	return BalanceSummary{
		TotalEntitled:   roundDecimal(totalEntitled),
		TotalUsed:       roundDecimal(totalUsed),
		TotalAvailable:  roundDecimal(totalEntitled.Sub(totalUsed)),
		UtilizationRate: utilization,
	}
}

// ComputeEmployeeStats derives per-employee attendance and balance rows for
// a year as of a reference date. Working days run from the later of the year
// start and the joining date through the earlier of asOf and the year end;
// a future joiner gets zero working days and, by convention, 100%
// attendance (not penalized for days that never happened).
func ComputeEmployeeStats(employees []EmployeeRecord, balances []BalanceRecord, pendingApplications []ApplicationRecord, year int, asOf time.Time) []EmployeeLeaveStats {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, asOf.Location())
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, asOf.Location())

	calcEnd := asOf
	if calcEnd.After(yearEnd) {
		calcEnd = yearEnd
	}

	balancesByEmployee := make(map[string][]BalanceRecord)
	for _, b := range balances {
		balancesByEmployee[b.EmployeeID] = append(balancesByEmployee[b.EmployeeID], b)
	}

	pendingCounts := make(map[string]int)
	for _, app := range pendingApplications {
		pendingCounts[app.EmployeeID]++
	}

	stats := make([]EmployeeLeaveStats, 0, len(employees))
	for _, emp := range employees {
		effectiveStart := yearStart
		if emp.DateOfJoining.After(yearStart) {
			effectiveStart = emp.DateOfJoining
		}

		workingDays := 0
		if !effectiveStart.After(calcEnd) {
			workingDays = leave.CountWorkingDays(effectiveStart, calcEnd)
		}

		entitled := decimal.Zero
		used := decimal.Zero
		for _, b := range balancesByEmployee[emp.ID] {
			entitled = entitled.Add(b.EntitledDays).Add(b.CarriedForwardDays).Add(b.AdjustedDays)
			used = used.Add(b.UsedDays)
		}

		deptName := fallbackDepartment
		if emp.DepartmentName != nil && *emp.DepartmentName != "" {
			deptName = *emp.DepartmentName
		}

		entitledF, _ := entitled.Float64()
		usedF, _ := used.Float64()

		stats = append(stats, EmployeeLeaveStats{
			EmployeeID:           emp.ID,
			EmployeeName:         emp.FullName,
			DepartmentName:       deptName,
			TotalEntitled:        entitledF,
			TotalUsed:            usedF,
			TotalBalance:         entitledF - usedF,
			PendingRequests:      pendingCounts[emp.ID],
			DateOfJoining:        emp.DateOfJoining.Format("2006-01-02"),
			TotalWorkingDays:     workingDays,
			LeaveTaken:           usedF,
			AttendancePercentage: attendancePercentage(workingDays, usedF),
		})
	}

	return stats
}

// attendancePercentage is clamped to [0, 100]. Zero working days means the
// employee had no attendance expectation yet and counts as fully present.
func attendancePercentage(workingDays int, leaveTaken float64) float64 {
	if workingDays == 0 {
		return 100
	}
	pct := (float64(workingDays) - leaveTaken) / float64(workingDays) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func roundDecimal(d decimal.Decimal) int {
	f, _ := d.Float64()
	return int(math.Round(f))
}
