package dial

import "time"

// Calendar fields of a moment: year, month (1-based), day, hour, minute, second, millisecond.
//
// Values may be out of range, time.Date normalizes them on reconstruction, e.g., day 32 of
// January becomes Feb 1 and hour -1 becomes 23:00 of the previous day.
type Tuple [7]int

func tupleOf(t time.Time) Tuple {
	yyyy, mm, dd := t.Date()
	return Tuple{
		yyyy,
		int(mm),
		dd,
		t.Hour(),
		t.Minute(),
		t.Second(),
		t.Nanosecond() / int(time.Millisecond),
	}
}

func (tp Tuple) time(loc *time.Location) time.Time {
	return time.Date(tp[FieldYear], time.Month(tp[FieldMonth]), tp[FieldDay],
		tp[FieldHour], tp[FieldMinute], tp[FieldSecond], tp[FieldMillisecond]*int(time.Millisecond), loc)
}

// Number of days in the month, month may be out of range and is normalized first.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
