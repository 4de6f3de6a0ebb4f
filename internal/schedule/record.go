package schedule

import (
	"strconv"
	"time"

	"github.com/sharadgeorge/oncall-converter/internal/model"
)

// dateLayout matches the scheduling system's import format.
const dateLayout = "01/02/2006"

// ClockMinutes converts a no-colon 24h time string ("700", "1530") to
// minutes since midnight. Malformed values return -1.
func ClockMinutes(clock string) int {
	n, err := strconv.Atoi(clock)
	if err != nil || n < 0 {
		return -1
	}
	hour := n / 100
	minute := n % 100
	if hour > 23 || minute > 59 {
		return -1
	}
	return hour*60 + minute
}

// Overnight reports whether a block spans midnight. A block whose end
// time is at or before its start time ends on the following calendar
// day; a 0700-0700 block is a full 24 hours.
func Overnight(start, end string) bool {
	return ClockMinutes(end) <= ClockMinutes(start)
}

// NewRecord builds one import record for a block starting on the given
// date. The end date follows the overnight rule regardless of weekday
// or weekend layout.
func NewRecord(employee, team string, date time.Time, start, end, role, notes string) model.ScheduleRecord {
	endDate := date
	if Overnight(start, end) {
		endDate = date.AddDate(0, 0, 1)
	}
	return model.ScheduleRecord{
		Employee:  employee,
		Team:      team,
		StartDate: date.Format(dateLayout),
		StartTime: start,
		EndDate:   endDate.Format(dateLayout),
		EndTime:   end,
		Role:      role,
		Notes:     notes,
	}
}
