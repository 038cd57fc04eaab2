package attendance

import (
	"time"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

// Day is one cell of a monthly calendar.
type Day struct {
	Date string `json:"date"` // YYYY-MM-DD
	Day  int    `json:"day"`
	// Status is set in single-student calendars when the student has a record that day.
	Status Status `json:"status,omitempty"`
	// Counts is set in group calendars when at least one record exists that day.
	Counts *Counts `json:"counts,omitempty"`
}

// Tier of the day for display; single-student days use their status instead.
func (d Day) Tier() Tier {
	if d.Counts == nil {
		return TierNone
	}
	return d.Counts.Tier()
}

type Calendar struct {
	Month string `json:"month"` // YYYY-MM
	// Leading is the number of blank cells before day 1 in a Sunday-first week.
	Leading   int    `json:"leading"`
	StudentID string `json:"studentId,omitempty"`
	Days      []Day  `json:"days"`
}

// MonthlyCalendar groups the month's records by date. With a selected student each day maps to
// that student's status; otherwise each day maps to the counts across `students`.
func MonthlyCalendar(month time.Time, students []student.Student, selected *student.Student, records []Record) Calendar {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	group := students
	cal := Calendar{
		Month:   core.FormatMonth(first),
		Leading: int(first.Weekday()),
		Days:    make([]Day, 0, last.Day()),
	}
	if selected != nil {
		group = []student.Student{*selected}
		cal.StudentID = selected.ID
	}
	ids := studentSet(group)

	byDate := make(map[string][]Record)
	for _, r := range records {
		if _, ok := ids[r.StudentID]; ok {
			byDate[r.Date] = append(byDate[r.Date], r)
		}
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := Day{Date: core.FormatDate(d), Day: d.Day()}
		if recs, ok := byDate[day.Date]; ok {
			if selected != nil {
				day.Status = recs[len(recs)-1].Status
			} else {
				c := Counts{Total: len(ids)}
				for _, r := range recs {
					c.add(r.Status)
				}
				day.Counts = &c
			}
		}
		cal.Days = append(cal.Days, day)
	}
	return cal
}

// Weeks splits the calendar into Sunday-first rows; blank cells are nil.
func (cal Calendar) Weeks() [][]*Day {
	cells := make([]*Day, cal.Leading, cal.Leading+len(cal.Days))
	for i := range cal.Days {
		cells = append(cells, &cal.Days[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}
	weeks := make([][]*Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
