package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	testutil "github.com/umairnumplate/noor-ul-masajid/tests"
)

type cliTest struct {
	name       string
	args       []string // without program name
	input      string   // answers read on stdin
	wantErr    error
	wantErrStr string
	wantOut    []string
	extra      interface{}
}

type cliFixture struct {
	app testutil.App
	out *bytes.Buffer
}

func setup(t *testing.T) cliFixture {
	t.Helper()

	isTerminal, writeAll := isTerminalFunc, clipboardWriteAll
	t.Cleanup(func() {
		isTerminalFunc, clipboardWriteAll = isTerminal, writeAll
	})
	isTerminalFunc = func(int) bool { return true }
	return cliFixture{app: testutil.NewApp(t), out: new(bytes.Buffer)}
}

func (f cliFixture) run(t *testing.T, tt cliTest) {
	t.Helper()

	f.out.Reset()
	cli := newCommandLine(f.app.Services, strings.NewReader(tt.input), f.out)
	err := cli.run(tt.args)
	switch {
	case tt.wantErr != nil:
		assert.ErrorIs(t, err, tt.wantErr)
	case tt.wantErrStr != "":
		if assert.Error(t, err) {
			assert.Equal(t, tt.wantErrStr, err.Error())
		}
	default:
		require.NoError(t, err)
	}
	for _, want := range tt.wantOut {
		assert.Contains(t, f.out.String(), want)
	}
}

func Test_commandLine_root(t *testing.T) {
	f := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"madrasa", "student"}},
		{name: "dashboard", args: []string{"dashboard"}, wantOut: []string{"Students", "3", "Rs. 2,500", "Welcome to Noor ul Masajid"}},
		{name: "token", args: []string{"token"}, wantOut: []string{"."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.run(t, tt)
		})
	}
}

func Test_commandLine_student(t *testing.T) {
	f := setup(t)

	tests := []cliTest{
		{name: "list", args: []string{"student", "list"}, wantOut: []string{"Ahmed Ali", "Bilal Khan", "Fatima Raza"}},
		{name: "list by group", args: []string{"student", "list", "--group", "hifz-all"}, wantOut: []string{"Fatima Raza"}},
		{name: "show", args: []string{"student", "show", "s1"}, wantOut: []string{"Ahmed Ali", "Aammah Awwal", "0300-1234567"}},
		{name: "show unknown", args: []string{"student", "show", "s9"}, wantErr: student.ErrNotFound},
		{
			name:       "suggestion",
			args:       []string{"student", "show", "s1x"},
			wantErrStr: `student not found: "s1x" (did you mean s1 (Ahmed Ali)?)`,
		},
		{
			name:    "add",
			args:    []string{"student", "add", "--name", "Usman Ghani", "--father", "Abdul Ghani", "--phone", "0300-5556667", "--class", "dn1"},
			wantOut: []string{"enrolled"},
		},
		{name: "add without name", args: []string{"student", "add", "--class", "dn1"}, extra: new(validator.ValidationErrors)},
		{name: "edit", args: []string{"student", "edit", "s3", "--phone", "0333-0000000"}, wantOut: []string{"student s3 updated"}},
		{name: "edit unknown", args: []string{"student", "edit", "s9", "--phone", "0333-0000000"}, wantErr: student.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if target, ok := tt.extra.(*validator.ValidationErrors); ok {
				f.out.Reset()
				err := newCommandLine(f.app.Services, strings.NewReader(""), f.out).run(tt.args)
				assert.ErrorAs(t, err, target)
				return
			}
			f.run(t, tt)
		})
	}

	s3, err := f.app.Students.GetByID("s3")
	require.NoError(t, err)
	assert.Equal(t, "0333-0000000", s3.Phone)
	assert.Equal(t, "Bilal Khan", s3.Name)

	all, err := f.app.Students.QueryAll()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func Test_commandLine_studentDelete(t *testing.T) {
	type extra struct {
		terminal bool
		remain   int
	}
	tests := []cliTest{
		{name: "not interactive", args: []string{"student", "delete", "s2"}, wantErr: errNotInteractive, extra: extra{remain: 3}},
		{name: "aborted", args: []string{"student", "delete", "s2"}, input: "n\n", wantErr: errAborted, extra: extra{terminal: true, remain: 3}},
		{name: "no answer", args: []string{"student", "delete", "s2"}, wantErr: errAborted, extra: extra{terminal: true, remain: 3}},
		{name: "unknown id", args: []string{"student", "delete", "s2", "s9"}, wantErr: student.ErrNotFound, extra: extra{terminal: true, remain: 3}},
		{name: "confirmed", args: []string{"student", "delete", "s2"}, input: "y\n", wantOut: []string{"1 student deleted"}, extra: extra{terminal: true, remain: 2}},
		{name: "yes flag", args: []string{"student", "delete", "--yes", "s1", "s2"}, wantOut: []string{"2 students deleted"}, extra: extra{remain: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			ex := tt.extra.(extra)
			isTerminalFunc = func(int) bool { return ex.terminal }

			f.run(t, tt)

			all, err := f.app.Students.QueryAll()
			require.NoError(t, err)
			assert.Len(t, all, ex.remain)
		})
	}
}

func Test_commandLine_attendance(t *testing.T) {
	f := setup(t)

	tests := []cliTest{
		{name: "mark", args: []string{"attendance", "mark", "s1", "present", "--date", "2024-10-01"}, wantOut: []string{"Ahmed Ali marked Present on 2024-10-01"}},
		{name: "mark leave", args: []string{"attendance", "mark", "s3", "Leave", "--date", "2024-10-01"}},
		{name: "bad status", args: []string{"attendance", "mark", "s1", "late", "--date", "2024-10-01"}, wantErrStr: `status "late" must be one of Present, Absent, Leave`},
		{name: "bad date", args: []string{"attendance", "mark", "s1", "Present", "--date", "01/10/2024"}, wantErrStr: `date "01/10/2024" must be formatted as YYYY-MM-DD`},
		{name: "unknown student", args: []string{"attendance", "mark", "s9", "Present", "--date", "2024-10-01"}, wantErr: student.ErrNotFound},
		{name: "stats", args: []string{"attendance", "stats", "--date", "2024-10-01", "--group", "dn2"}, wantOut: []string{"Present 1  Absent 0  Leave 1  Total 2  (50.0%)"}},
		{name: "mark all", args: []string{"attendance", "mark-all", "--date", "2024-10-02", "--group", "hifz-all", "--status", "absent"}, wantOut: []string{"1 student marked Absent on 2024-10-02"}},
		{name: "clear", args: []string{"attendance", "clear", "s3", "--date", "2024-10-01"}, wantOut: []string{"Bilal Khan cleared on 2024-10-01"}},
		{name: "calendar", args: []string{"attendance", "calendar", "--month", "2024-10"}, wantOut: []string{"2024-10", "Sun", "31"}},
		{name: "calendar of a student", args: []string{"attendance", "calendar", "--month", "2024-10", "--student", "s1"}, wantOut: []string{"2024-10 · s1"}},
		{name: "bad month", args: []string{"attendance", "calendar", "--month", "October"}, wantErrStr: `month "October" must be formatted as YYYY-MM`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.run(t, tt)
		})
	}

	records, err := f.app.Attendance.Records()
	require.NoError(t, err)
	st, ok := attendance.StatusOf(records, "s1", "2024-10-01")
	assert.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, st)
	_, ok = attendance.StatusOf(records, "s3", "2024-10-01")
	assert.False(t, ok)
	st, _ = attendance.StatusOf(records, "s2", "2024-10-02")
	assert.Equal(t, attendance.StatusAbsent, st)
}

func Test_commandLine_fees(t *testing.T) {
	f := setup(t)

	tests := []cliTest{
		{name: "roster", args: []string{"fees", "roster", "--month", "2024-09"}, wantOut: []string{"Madrasa fees 2024-09", "R-09-001", "mf3"}},
		{name: "roster pending", args: []string{"fees", "roster", "--month", "2024-09", "--status", "pending"}, wantOut: []string{"Bilal Khan"}},
		{name: "roster bad status", args: []string{"fees", "roster", "--month", "2024-09", "--status", "late"}, wantErrStr: `status "late" must be one of Paid, Pending`},
		{name: "roster bad month", args: []string{"fees", "roster", "--month", "Sept"}, wantErrStr: `month "Sept" must be formatted as YYYY-MM`},
		{name: "pay existing", args: []string{"fees", "set", "s1", "--month", "2024-10", "--status", "Paid", "--receipt", "R-10-001"}, wantOut: []string{"Ahmed Ali", "Paid for 2024-10 (mf4)"}},
		{name: "new record", args: []string{"fees", "set", "s2", "--month", "2024-10"}, wantOut: []string{"Fatima Raza", "Pending for 2024-10"}},
		{name: "unknown student", args: []string{"fees", "set", "s9", "--month", "2024-10"}, wantErr: student.ErrNotFound},
		{name: "delete unknown", args: []string{"fees", "delete", "--yes", "mf9"}, wantErr: fee.ErrNotFound},
		{name: "delete", args: []string{"fees", "delete", "--yes", "mf3"}, wantOut: []string{"1 fee record deleted"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.run(t, tt)
		})
	}

	records, err := f.app.Fees.QueryAll()
	require.NoError(t, err)
	mf4 := fee.Lookup(records, "s1", "2024-10")
	require.NotNil(t, mf4)
	assert.Equal(t, fee.StatusPaid, mf4.Status)
	assert.Equal(t, "R-10-001", mf4.ReceiptNumber.String)

	created := fee.Lookup(records, "s2", "2024-10")
	require.NotNil(t, created)
	assert.Equal(t, fee.DefaultAmount, created.Amount)
	assert.Nil(t, fee.Lookup(records, "s3", "2024-09"))
}

func Test_commandLine_report(t *testing.T) {
	f := setup(t)
	f.app.Assist.Available = true
	f.app.Assist.Text = "Ahmed is a diligent student."

	tests := []cliTest{
		{name: "text", args: []string{"report", "s1"}, wantOut: []string{"Ahmed Ali", "Aammah Awwal", "N/A"}},
		{name: "remark", args: []string{"report", "s1", "--ai"}, wantOut: []string{"Ahmed is a diligent student."}},
		{name: "share", args: []string{"report", "s1", "--share"}, wantOut: []string{"https://api.whatsapp.com/send?phone=923001234567&text="}},
		{name: "unknown student", args: []string{"report", "s9"}, wantErr: student.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.run(t, tt)
		})
	}
	assert.Len(t, f.app.Assist.Prompts(), 1)
}

func Test_commandLine_message(t *testing.T) {
	f := setup(t)

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	tests := []cliTest{
		{name: "sms", args: []string{"message", "sms", "Holiday tomorrow", "--group", "dn2"}, wantOut: []string{"sms:03001234567,03331122334?body=Holiday%20tomorrow"}},
		{name: "whatsapp", args: []string{"message", "whatsapp", "Holiday", "--student", "s2"}, wantOut: []string{"Fatima Raza", "https://wa.me/923217654321?text=Holiday"}},
		{name: "copy", args: []string{"message", "copy", "Fees due", "--group", "hifz-all"}, wantOut: []string{"message for 1 recipient copied"}},
		{name: "unknown student", args: []string{"message", "sms", "Hi", "--student", "s9"}, wantErr: student.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.run(t, tt)
		})
	}
	assert.Contains(t, copied, "Fees due")
	assert.Contains(t, copied, "0321-7654321")

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	f.run(t, cliTest{args: []string{"message", "copy", "Fees due"}, wantErrStr: "copying to clipboard: no clipboard"})
}

func Test_commandLine_announce(t *testing.T) {
	f := setup(t)
	f.app.Assist.Available = true
	f.app.Assist.Text = "```json\n{\"title\": \"Eid Holidays\", \"content\": \"The madrasa is closed for Eid.\"}\n```"

	tests := []cliTest{
		{name: "list", args: []string{"announce", "list"}, wantOut: []string{"Welcome to Noor ul Masajid", "anno1"}},
		{name: "add", args: []string{"announce", "add", "--title", "Exams", "--content", "Exams start on Monday."}, wantOut: []string{"posted"}},
		{name: "generate", args: []string{"announce", "generate", "eid", "holidays"}, wantOut: []string{"Eid Holidays", "The madrasa is closed for Eid."}},
		{name: "generate and post", args: []string{"announce", "generate", "--post", "eid"}, wantOut: []string{"posted"}},
		{name: "publish", args: []string{"announce", "publish", "anno1"}, wantOut: []string{"announcement anno1 sent to 1 recipient"}},
		{name: "delete", args: []string{"announce", "delete", "-y", "anno1"}, wantOut: []string{"1 announcement deleted"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.run(t, tt)
		})
	}

	anns, err := f.app.Announcements.QueryAll()
	require.NoError(t, err)
	assert.Len(t, anns, 2)
	assert.Len(t, f.app.Mailer.SentMessages(), 1)
}

func Test_commandLine_migrate(t *testing.T) {
	f := setup(t)

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErrStr: "requires at least 1 arg(s), only received 0"},
		{name: "memory engine", args: []string{"migrate", "up"}, wantErr: errNotSQL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.run(t, tt)
		})
	}
}
