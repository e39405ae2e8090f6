// file: internals/constants/timetable.go
package constants

/* =======================================================
   TIMETABLE ENUMS
   ======================================================= */

// Weekday tokens as persisted in timetable_settings.operating_days and as keys
// of day_time_settings. Closed set of exactly 7 values.
var WeekdayTokens = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func IsWeekdayToken(s string) bool {
	for _, t := range WeekdayTokens {
		if t == s {
			return true
		}
	}
	return false
}

// Lesson-length tokens for timetable_settings.time_interval.
var TimeIntervalTokens = []string{"30m", "40m", "50m", "1h", "1h30m", "2h"}

func IsTimeIntervalToken(s string) bool {
	for _, t := range TimeIntervalTokens {
		if t == s {
			return true
		}
	}
	return false
}

// Edit-time limit on filled slots per building. The reconciler re-checks this
// defensively instead of trusting the client.
const MaxClassroomsPerBuilding = 6

// Capacity assigned to classrooms the reconciler creates on the fly.
const DefaultClassroomCapacity = 0
