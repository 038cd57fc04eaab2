package report_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umairnumplate/noor-ul-masajid/core/assist"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/report"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	testutil "github.com/umairnumplate/noor-ul-masajid/tests"
)

var (
	ahmed   = student.Student{ID: "s1", Name: "Ahmed Ali", ClassID: "dn2", Phone: "0300-1234567"}
	records = []attendance.Record{
		{StudentID: "s1", Date: "2024-10-01", Status: attendance.StatusPresent},
		{StudentID: "s1", Date: "2024-10-02", Status: attendance.StatusPresent},
		{StudentID: "s1", Date: "2024-10-03", Status: attendance.StatusAbsent},
		{StudentID: "s2", Date: "2024-10-01", Status: attendance.StatusLeave},
	}
)

func TestBuild_Text(t *testing.T) {
	r := report.Build(ahmed, class.Reference(), records)

	want := "*Noor ul Masajid Student Report*\n\n" +
		"*Name:* Ahmed Ali\n" +
		"*Class:* Aammah Awwal\n\n" +
		"*Attendance Summary:*\n" +
		"- Present: 2\n" +
		"- Absent: 1\n" +
		"- Leave: 0\n" +
		"- Percentage: 66.7%\n\n" +
		"*Remarks:* " + report.DefaultRemark("Ahmed Ali") + "\n\n" +
		"_This is an auto-generated report._"
	assert.Equal(t, want, r.Text())
	assert.False(t, r.AIRemark)
}

func TestBuild_Unknown(t *testing.T) {
	s := ahmed
	s.ID, s.ClassID = "s9", "x1"

	r := report.Build(s, class.Reference(), records)
	assert.Equal(t, "N/A", r.ClassName)
	assert.Equal(t, "N/A", r.Summary.Rate)
	assert.Contains(t, r.Text(), "- Percentage: N/A%\n")
}

func TestReport_WithRemark(t *testing.T) {
	r := report.Build(ahmed, class.Reference(), records)

	kept := r.WithRemark("  \n")
	assert.Equal(t, r.Remark, kept.Remark)
	assert.False(t, kept.AIRemark)

	ai := r.WithRemark(" Ahmed attends regularly. ")
	assert.Equal(t, "Ahmed attends regularly.", ai.Remark)
	assert.True(t, ai.AIRemark)
	assert.NotEqual(t, r.Remark, ai.Remark, "the original report is unchanged")
}

func TestReport_ShareURL(t *testing.T) {
	u := report.Build(ahmed, class.Reference(), records).ShareURL()
	assert.True(t, strings.HasPrefix(u, "https://api.whatsapp.com/send?phone=923001234567&text=*Noor%20ul%20Masajid%20Student%20Report*%0A%0A"), u)
}

func TestGenerateRemark(t *testing.T) {
	r := report.Build(ahmed, class.Reference(), records)

	gen := &testutil.FakeGenerator{}
	assert.Equal(t, assist.MsgUnavailable, report.GenerateRemark(context.Background(), gen, r))

	gen.Available, gen.Text = true, "Ahmed shows steady progress."
	assert.Equal(t, "Ahmed shows steady progress.", report.GenerateRemark(context.Background(), gen, r))

	prompts := gen.Prompts()
	require.Len(t, prompts, 2)
	for _, want := range []string{"Ahmed Ali", "class Aammah Awwal", "Total Days Tracked: 3", "Attendance Percentage: 66.7%", ">=85%"} {
		assert.Contains(t, prompts[1], want)
	}
}
