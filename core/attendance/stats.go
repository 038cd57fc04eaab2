package attendance

import (
	"strconv"
	"time"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

// Counts tallies statuses. Total is the size of the student group the counts were taken over,
// so Total - (Present + Absent + Leave) students have no record.
type Counts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	Total   int `json:"total"`
}

func (c *Counts) add(s Status) {
	switch s {
	case StatusPresent:
		c.Present++
	case StatusAbsent:
		c.Absent++
	case StatusLeave:
		c.Leave++
	}
}

// Marked is the number of students holding a record.
func (c Counts) Marked() int { return c.Present + c.Absent + c.Leave }

// Percentage of present students over Total; 0 when Total is 0.
func (c Counts) Percentage() float64 {
	if c.Total <= 0 {
		return 0
	}
	return float64(c.Present) / float64(c.Total) * 100
}

// Tier buckets a day for display.
type Tier int

const (
	TierNone Tier = iota
	TierPoor      // nobody present, some absent or on leave
	TierFair      // somebody present, under 70%
	TierGood      // >= 70%
	TierExcellent // >= 90%
)

func (t Tier) String() string {
	switch t {
	case TierPoor:
		return "poor"
	case TierFair:
		return "fair"
	case TierGood:
		return "good"
	case TierExcellent:
		return "excellent"
	}
	return "none"
}

func (c Counts) Tier() Tier {
	pct := c.Percentage()
	switch {
	case pct >= 90:
		return TierExcellent
	case pct >= 70:
		return TierGood
	case c.Present > 0:
		return TierFair
	case c.Total > 0 && (c.Absent > 0 || c.Leave > 0):
		return TierPoor
	}
	return TierNone
}

func studentSet(students []student.Student) map[string]struct{} {
	set := make(map[string]struct{}, len(students))
	for _, s := range students {
		set[s.ID] = struct{}{}
	}
	return set
}

// DailyStats counts the statuses recorded on `date` for exactly the given students.
func DailyStats(students []student.Student, records []Record, date string) Counts {
	ids := studentSet(students)
	c := Counts{Total: len(ids)}
	for _, r := range records {
		if r.Date != date {
			continue
		}
		if _, ok := ids[r.StudentID]; ok {
			c.add(r.Status)
		}
	}
	return c
}

// PresentOn counts every Present record on `date`, whatever the student.
func PresentOn(records []Record, date string) int {
	var n int
	for _, r := range records {
		if r.Date == date && r.Status == StatusPresent {
			n++
		}
	}
	return n
}

// Summary is the whole attendance history of a single student.
type Summary struct {
	Counts
	// Rate is the present percentage formatted with one decimal, or "N/A" without any tracked day.
	Rate string `json:"percentage"`
}

// StudentSummary tallies every record of the student; Total is the number of tracked days.
func StudentSummary(records []Record, studentID string) Summary {
	var c Counts
	for _, r := range records {
		if r.StudentID == studentID {
			c.add(r.Status)
			c.Total++
		}
	}
	pct := "N/A"
	if c.Total > 0 {
		pct = formatPercentage(c.Percentage())
	}
	return Summary{Counts: c, Rate: pct}
}

// Today formats `now` as an attendance date; days are taken in UTC.
func Today(now time.Time) string { return core.FormatDate(now.UTC()) }

func formatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
