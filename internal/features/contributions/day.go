package contributions

// DefaultWindow is how many of the most recent days are kept for the chart.
const DefaultWindow = 70

// DayRecord is one calendar day and its contribution count.
type DayRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Tail returns the last n records, or all of them when there are fewer.
// The result shares no backing array with days.
func Tail(days []DayRecord, n int) []DayRecord {
	if n <= 0 {
		return []DayRecord{}
	}
	if len(days) > n {
		days = days[len(days)-n:]
	}
	out := make([]DayRecord, len(days))
	copy(out, days)
	return out
}

// MaxCount is the largest count in days, at least 1.
func MaxCount(days []DayRecord) int {
	max := 1
	for _, d := range days {
		if d.Count > max {
			max = d.Count
		}
	}
	return max
}
