package reportService

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AquaBackend/internal/entity"
)

func TestRangeWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

	start, end, ok := rangeWindow(entity.ReportRangeToday, now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)

	start, end, ok = rangeWindow(entity.ReportRangeWeek, now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -7), start)
	assert.Equal(t, now, end)

	start, end, ok = rangeWindow(entity.ReportRangeMonth, now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, -1, 0), start)
	assert.Equal(t, now, end)

	_, _, ok = rangeWindow(entity.ReportRange("year"), now)
	assert.False(t, ok)
}

func TestRenderCSV(t *testing.T) {
	recordedAt := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	sensors := []entity.Sensor{
		{ID: "s1", Name: "Sensor de pH", Type: entity.SensorTypePH},
	}
	readings := []entity.SensorReading{
		{ID: "r1", SensorID: "s1", Value: 7.2, RecordedAt: recordedAt},
		{ID: "r2", SensorID: "s1", Value: 7.35, RecordedAt: recordedAt.Add(time.Hour)},
	}

	content, err := renderCSV(readings, sensors)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"sensor_id", "sensor_name", "type", "value", "recorded_at"}, rows[0])
	assert.Equal(t, []string{"s1", "Sensor de pH", "PH", "7.20", "2026-03-15T10:00:00Z"}, rows[1])
	assert.Equal(t, "7.35", rows[2][3])
}

func TestRenderCSVEmptyReadings(t *testing.T) {
	content, err := renderCSV(nil, nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
