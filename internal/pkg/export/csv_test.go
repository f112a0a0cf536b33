package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/brightops/peoplehub-backend-go/internal/domain/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEmployeeStatsCSV(t *testing.T) {
	stats := []analytics.EmployeeLeaveStats{
		{
			EmployeeID:           "e1",
			EmployeeName:         "Priya Nair",
			DepartmentName:       "Engineering",
			TotalEntitled:        12,
			TotalUsed:            4.5,
			TotalBalance:         7.5,
			PendingRequests:      1,
			DateOfJoining:        "2022-03-01",
			TotalWorkingDays:     25,
			LeaveTaken:           4.5,
			AttendancePercentage: 82,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEmployeeStatsCSV(&buf, stats, 2024))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Employee", records[0][0])
	assert.Equal(t, "Entitled (2024)", records[0][3])

	row := records[1]
	assert.Equal(t, "Priya Nair", row[0])
	assert.Equal(t, "Engineering", row[1])
	assert.Equal(t, "2022-03-01", row[2])
	assert.Equal(t, "12", row[3])
	assert.Equal(t, "4.5", row[4])
	assert.Equal(t, "7.5", row[5])
	assert.Equal(t, "1", row[6])
	assert.Equal(t, "25", row[7])
	assert.Equal(t, "82.0", row[9])
}

func TestWriteEmployeeStatsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEmployeeStatsCSV(&buf, nil, 2024))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "12", formatDays(12))
	assert.Equal(t, "12.5", formatDays(12.5))
	assert.Equal(t, "0", formatDays(0))
	assert.Equal(t, "-2.5", formatDays(-2.5))
}
