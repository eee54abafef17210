package parser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/parser"
)

func TestParseInterval_ValidExpressions(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected int64
	}{
		{name: "plain seconds", expr: "3600", expected: 3600},
		{name: "seconds with whitespace", expr: "  60 ", expected: 60},
		{name: "go duration", expr: "1h30m", expected: 5400},
		{name: "go duration seconds", expr: "45s", expected: 45},
		{name: "every descriptor", expr: "@every 15m", expected: 900},
		{name: "hourly descriptor", expr: "@hourly", expected: 3600},
		{name: "daily descriptor", expr: "@daily", expected: 86400},
		{name: "weekly descriptor", expr: "@weekly", expected: 604800},
		{name: "evenly spaced cron", expr: "0 */2 * * *", expected: 7200},
		{name: "every minute cron", expr: "* * * * *", expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, err := parser.ParseInterval(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, seconds)
		})
	}
}

func TestParseInterval_InvalidExpressions(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		errContains string
	}{
		{name: "empty", expr: "", errContains: "empty"},
		{name: "zero seconds", expr: "0", errContains: "must be positive"},
		{name: "negative seconds", expr: "-60", errContains: "must be positive"},
		{name: "negative duration", expr: "-1h", errContains: "must be positive"},
		{name: "fractional seconds", expr: "1500ms", errContains: "whole number of seconds"},
		{name: "garbage", expr: "sometimes", errContains: "invalid interval expression"},
		{name: "monthly is uneven", expr: "@monthly", errContains: "not evenly spaced"},
		{name: "weekdays only is uneven", expr: "30 9 * * 1-5", errContains: "not evenly spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, err := parser.ParseInterval(tt.expr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Zero(t, seconds)
		})
	}
}

func TestCalculateNextExecutionTime_IntervalSchedule(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		timeInterval int64
		expected     time.Time
		expectErr    bool
	}{
		{name: "one minute", timeInterval: 60, expected: time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC)},
		{name: "one day", timeInterval: 86400, expected: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)},
		{name: "zero interval", timeInterval: 0, expectErr: true},
		{name: "negative interval", timeInterval: -60, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := parser.CalculateNextExecutionTime(current, parser.ScheduleInterval, tt.timeInterval, "")
			if tt.expectErr {
				assert.Error(t, err)
				assert.True(t, next.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestCalculateNextExecutionTime_CronSchedule(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	next, err := parser.CalculateNextExecutionTime(current, parser.ScheduleCron, 0, "0 0 * * *")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), next)

	next, err = parser.CalculateNextExecutionTime(current, parser.ScheduleCron, 0, "@every 90s")
	require.NoError(t, err)
	assert.Equal(t, current.Add(90*time.Second), next)

	_, err = parser.CalculateNextExecutionTime(current, parser.ScheduleCron, 0, "")
	assert.EqualError(t, err, "cron expression is required for cron schedule type")

	_, err = parser.CalculateNextExecutionTime(current, parser.ScheduleCron, 0, "invalid cron")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron expression")
}

func TestCalculateNextExecutionTime_UnknownScheduleType(t *testing.T) {
	next, err := parser.CalculateNextExecutionTime(time.Now(), "specific", 60, "")
	assert.EqualError(t, err, "unknown schedule type: specific")
	assert.True(t, next.IsZero())
}

func TestCalculateNextExecutionTime_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, loc)

	next, err := parser.CalculateNextExecutionTime(current, parser.ScheduleInterval, 60, "")
	require.NoError(t, err)
	assert.Equal(t, loc, next.Location())
}
