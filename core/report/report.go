package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/umairnumplate/noor-ul-masajid/core/assist"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/messaging"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

const notAvailable = "N/A"

// Report is the parent-facing progress summary of a student.
type Report struct {
	Student   student.Student    `json:"student"`
	ClassName string             `json:"className"` // N/A when the class is unknown
	Summary   attendance.Summary `json:"attendance"`
	Remark    string             `json:"remark"`
	AIRemark  bool               `json:"aiRemark"`
}

// Build summarises every attendance record of `s`, with the default remark.
func Build(s student.Student, classes []class.Class, records []attendance.Record) Report {
	r := Report{
		Student:   s,
		ClassName: notAvailable,
		Summary:   attendance.StudentSummary(records, s.ID),
		Remark:    DefaultRemark(s.Name),
	}
	if c, ok := class.Lookup(classes, s.ClassID); ok {
		r.ClassName = c.Name
	}
	return r
}

func DefaultRemark(name string) string {
	return name + " has shown excellent progress this term. " +
		"Consistent effort and participation in class activities are highly appreciated."
}

// WithRemark replaces the default remark; a blank remark keeps it.
func (r Report) WithRemark(remark string) Report {
	if remark = strings.TrimSpace(remark); remark != "" {
		r.Remark = remark
		r.AIRemark = true
	}
	return r
}

// Text is the WhatsApp-formatted report.
func (r Report) Text() string {
	var b strings.Builder
	b.WriteString("*Noor ul Masajid Student Report*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", r.Student.Name)
	fmt.Fprintf(&b, "*Class:* %s\n\n", r.ClassName)
	b.WriteString("*Attendance Summary:*\n")
	fmt.Fprintf(&b, "- Present: %d\n", r.Summary.Present)
	fmt.Fprintf(&b, "- Absent: %d\n", r.Summary.Absent)
	fmt.Fprintf(&b, "- Leave: %d\n", r.Summary.Leave)
	fmt.Fprintf(&b, "- Percentage: %s%%\n\n", r.Summary.Rate)
	fmt.Fprintf(&b, "*Remarks:* %s\n\n", r.Remark)
	b.WriteString("_This is an auto-generated report._")
	return b.String()
}

// ShareURL opens WhatsApp with the report addressed to the student's phone.
func (r Report) ShareURL() string {
	return messaging.WhatsAppShareURL(r.Student.Phone, r.Text())
}

// GenerateRemark asks `gen` for a personalised remark. The result may be one of the fixed
// assist messages; it is shown as is.
func GenerateRemark(ctx context.Context, gen assist.Generator, r Report) string {
	return gen.Generate(ctx, assist.ModelPro, remarkPrompt(r))
}

func remarkPrompt(r Report) string {
	return fmt.Sprintf(`Generate a brief, personalized performance remark for a student named %s.
The student is in class %s at Noor ul Masajid Islamic Education System.
Here is their attendance record summary:
- Total Days Tracked: %d
- Present: %d days
- Absent: %d days
- Leave: %d days
- Attendance Percentage: %s%%

Based on this data, write a short (2-3 sentences), encouraging, and professional remark suitable for a parent-facing report.
If attendance is good (>=85%%), praise their consistency.
If attendance is average (60-84%%), encourage them to attend more regularly.
If attendance is poor (<60%%), mention it constructively and suggest improvement.
Start the remark by addressing the student's progress.`,
		r.Student.Name, r.ClassName, r.Summary.Total,
		r.Summary.Present, r.Summary.Absent, r.Summary.Leave, r.Summary.Rate)
}
