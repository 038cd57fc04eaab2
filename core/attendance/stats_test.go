package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

var (
	students = []student.Student{
		{ID: "s1", Name: "Ahmed Ali", ClassID: "dn2"},
		{ID: "s2", Name: "Fatima Raza", ClassID: "h1"},
		{ID: "s3", Name: "Bilal Khan", ClassID: "dn2"},
	}
	records = []Record{
		{StudentID: "s1", Date: "2024-10-01", Status: StatusPresent},
		{StudentID: "s2", Date: "2024-10-01", Status: StatusAbsent},
		{StudentID: "s3", Date: "2024-10-01", Status: StatusLeave},
		{StudentID: "s1", Date: "2024-10-02", Status: StatusPresent},
		{StudentID: "s3", Date: "2024-10-02", Status: StatusPresent},
		{StudentID: "s9", Date: "2024-10-02", Status: StatusPresent}, // not enrolled
		{StudentID: "s1", Date: "2024-10-03", Status: StatusAbsent},
	}
)

func TestDailyStats(t *testing.T) {
	tests := []struct {
		name     string
		students []student.Student
		date     string
		want     Counts
	}{
		{name: "everyone", students: students, date: "2024-10-01", want: Counts{Present: 1, Absent: 1, Leave: 1, Total: 3}},
		{name: "subset", students: students[:1], date: "2024-10-01", want: Counts{Present: 1, Total: 1}},
		{name: "unmarked students count in total", students: students, date: "2024-10-03", want: Counts{Absent: 1, Total: 3}},
		{name: "records of other students are ignored", students: students, date: "2024-10-02", want: Counts{Present: 2, Total: 3}},
		{name: "no day", students: students, date: "2024-11-01", want: Counts{Total: 3}},
		{name: "no students", date: "2024-10-01", want: Counts{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyStats(tt.students, records, tt.date)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Marked(), got.Total)
		})
	}
}

func TestCounts_Tier(t *testing.T) {
	tests := []struct {
		counts Counts
		want   Tier
	}{
		{counts: Counts{Present: 9, Absent: 1, Total: 10}, want: TierExcellent},
		{counts: Counts{Present: 10, Total: 10}, want: TierExcellent},
		{counts: Counts{Present: 7, Absent: 3, Total: 10}, want: TierGood},
		{counts: Counts{Present: 8, Total: 10}, want: TierGood},
		{counts: Counts{Present: 1, Absent: 9, Total: 10}, want: TierFair},
		{counts: Counts{Absent: 2, Leave: 1, Total: 10}, want: TierPoor},
		{counts: Counts{Total: 10}, want: TierNone},
		{counts: Counts{}, want: TierNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.counts.Tier())
		})
	}
}

func TestCounts_Percentage(t *testing.T) {
	assert.Equal(t, 0.0, Counts{}.Percentage())
	assert.InDelta(t, 66.666, Counts{Present: 2, Total: 3}.Percentage(), 0.001)
}

func TestStudentSummary(t *testing.T) {
	got := StudentSummary(records, "s1")
	assert.Equal(t, Summary{Counts: Counts{Present: 2, Absent: 1, Total: 3}, Rate: "66.7"}, got)

	got = StudentSummary(records, "s2")
	assert.Equal(t, "0.0", got.Rate)

	got = StudentSummary(records, "nobody")
	assert.Equal(t, Summary{Rate: "N/A"}, got)
}

func TestPresentOn(t *testing.T) {
	assert.Equal(t, 3, PresentOn(records, "2024-10-02"), "counts every student, enrolled or not")
	assert.Equal(t, 0, PresentOn(records, "2024-10-03"))
}

func TestToday(t *testing.T) {
	karachi := time.FixedZone("PKT", 5*60*60)
	now := time.Date(2024, 10, 2, 1, 30, 0, 0, karachi) // still Oct 1st in UTC
	assert.Equal(t, "2024-10-01", Today(now))
}
