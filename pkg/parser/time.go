package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	ScheduleInterval = "interval"
	ScheduleCron     = "cron"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// gapSamples is how many consecutive firings a cron expression must keep the
// same spacing for before it is accepted as an interval. Eight covers a
// weekday-only schedule crossing a weekend.
const gapSamples = 8

// reference anchors the gap calculation so the result does not depend on when
// the expression is parsed. Monday, start of a non-leap year.
var reference = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ParseInterval turns an interval expression into whole seconds. Accepted forms:
//
//	"3600"          plain seconds
//	"1h30m"         Go duration
//	"@every 15m"    cron constant delay
//	"@hourly"       cron descriptor
//	"0 */2 * * *"   five-field cron, if its firings are evenly spaced
func ParseInterval(expr string) (int64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, fmt.Errorf("interval expression is empty")
	}

	if seconds, err := strconv.ParseInt(expr, 10, 64); err == nil {
		return positive(seconds, expr)
	}

	if d, err := time.ParseDuration(expr); err == nil {
		if d%time.Second != 0 {
			return 0, fmt.Errorf("interval %q is not a whole number of seconds", expr)
		}
		return positive(int64(d/time.Second), expr)
	}

	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return 0, fmt.Errorf("invalid interval expression %q: %w", expr, err)
	}

	if constant, ok := schedule.(cron.ConstantDelaySchedule); ok {
		return positive(int64(constant.Delay/time.Second), expr)
	}

	gap, err := fixedGap(schedule)
	if err != nil {
		return 0, fmt.Errorf("interval expression %q: %w", expr, err)
	}
	return positive(gap, expr)
}

func fixedGap(schedule cron.Schedule) (int64, error) {
	prev := schedule.Next(reference)
	var gap time.Duration
	for i := 0; i < gapSamples; i++ {
		next := schedule.Next(prev)
		if next.IsZero() {
			return 0, fmt.Errorf("schedule never fires again")
		}
		d := next.Sub(prev)
		if i > 0 && d != gap {
			return 0, fmt.Errorf("schedule is not evenly spaced (%s vs %s)", gap, d)
		}
		gap = d
		prev = next
	}
	return int64(gap / time.Second), nil
}

func positive(seconds int64, expr string) (int64, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("interval %q must be positive", expr)
	}
	return seconds, nil
}

// CalculateNextExecutionTime returns when a job scheduled from
// currentExecutionTime runs next.
func CalculateNextExecutionTime(currentExecutionTime time.Time, scheduleType string, timeInterval int64, cronExpression string) (time.Time, error) {
	switch scheduleType {
	case ScheduleInterval:
		if timeInterval <= 0 {
			return time.Time{}, fmt.Errorf("invalid time interval")
		}
		return currentExecutionTime.Add(time.Duration(timeInterval) * time.Second), nil

	case ScheduleCron:
		if cronExpression == "" {
			return time.Time{}, fmt.Errorf("cron expression is required for cron schedule type")
		}
		schedule, err := cronParser.Parse(cronExpression)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid cron expression: %w", err)
		}
		return schedule.Next(currentExecutionTime), nil

	default:
		return time.Time{}, fmt.Errorf("unknown schedule type: %s", scheduleType)
	}
}
