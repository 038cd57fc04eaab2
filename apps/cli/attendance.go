package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

func dateOrToday(date string) (string, error) {
	if date = core.CleanString(date); date == "" {
		return attendance.Today(time.Now()), nil
	}
	if !core.IsDate(date) {
		return "", fmt.Errorf("date %q must be formatted as YYYY-MM-DD", date)
	}
	return date, nil
}

func parseStatus(s string) (attendance.Status, error) {
	for _, st := range attendance.Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("status %q must be one of Present, Absent, Leave", s)
}

func (cli *commandLine) attendanceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "attendance", Short: "Record and review daily attendance"}

	var date string
	mark := &cobra.Command{
		Use:   "mark STUDENT_ID STATUS",
		Short: "Set a student's status (Present, Absent, Leave) for a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := dateOrToday(date)
			if err != nil {
				return err
			}
			status, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			s, err := cli.student(args[0])
			if err != nil {
				return err
			}
			if err = cli.svc.Attendance.SetStatus(s.ID, d, status); err != nil {
				return err
			}
			cli.printf("%s marked %s on %s\n", s.Name, status, d)
			return nil
		},
	}
	mark.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default today)")

	clearCmd := &cobra.Command{
		Use:   "clear STUDENT_ID",
		Short: "Remove a student's status for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := dateOrToday(date)
			if err != nil {
				return err
			}
			s, err := cli.student(args[0])
			if err != nil {
				return err
			}
			if err = cli.svc.Attendance.ClearStatus(s.ID, d); err != nil {
				return err
			}
			cli.printf("%s cleared on %s\n", s.Name, d)
			return nil
		},
	}
	clearCmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default today)")

	var group, status string
	markAll := &cobra.Command{
		Use:   "mark-all",
		Short: "Set the same status for every student of a group",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			d, err := dateOrToday(date)
			if err != nil {
				return err
			}
			st, err := parseStatus(status)
			if err != nil {
				return err
			}
			students, err := cli.svc.Students.Filter(student.QueryFilter{Group: group})
			if err != nil {
				return err
			}
			if err = cli.svc.Attendance.MarkAll(student.IDs(students), d, st); err != nil {
				return err
			}
			cli.printf("%s marked %s on %s\n", pluralize(len(students), "student"), st, d)
			return nil
		},
	}
	markAll.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default today)")
	markAll.Flags().StringVar(&group, "group", "all", "class id, hifz-all, dars-e-nizami-all or all")
	markAll.Flags().StringVar(&status, "status", string(attendance.StatusPresent), "Present, Absent or Leave")

	var search string
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show the daily sheet of a group",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			d, err := dateOrToday(date)
			if err != nil {
				return err
			}
			students, err := cli.svc.Students.Filter(student.QueryFilter{Group: group, Search: search})
			if err != nil {
				return err
			}
			records, err := cli.svc.Attendance.Records()
			if err != nil {
				return err
			}
			c := attendance.DailyStats(students, records, d)
			cli.println(titleStyle.Render("Attendance of " + d))
			cli.printf("Present %d  Absent %d  Leave %d  Total %d  (%s%%)\n",
				c.Present, c.Absent, c.Leave, c.Total, strconv.FormatFloat(c.Percentage(), 'f', 1, 64))

			rows := make([][]string, len(students))
			for i, s := range students {
				st, ok := attendance.StatusOf(records, s.ID, d)
				label := mutedStyle.Render("-")
				if ok {
					label = statusStyle(st).Render(string(st))
				}
				rows[i] = []string{s.ID, s.Name, label}
			}
			cli.table([]string{"ID", "Name", "Status"}, rows)
			return nil
		},
	}
	stats.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default today)")
	stats.Flags().StringVar(&group, "group", "all", "class id, hifz-all, dars-e-nizami-all or all")
	stats.Flags().StringVar(&search, "search", "", "match on name")

	var month, studentID string
	calendar := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of attendance for a group or a single student",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			m := time.Now().UTC()
			if month != "" {
				var err error
				if m, err = time.Parse(core.MonthLayout, month); err != nil {
					return fmt.Errorf("month %q must be formatted as YYYY-MM", month)
				}
			}
			students, err := cli.svc.Students.Filter(student.QueryFilter{Group: group})
			if err != nil {
				return err
			}
			var selected *student.Student
			if studentID != "" {
				s, err := cli.student(studentID)
				if err != nil {
					return err
				}
				selected = &s
			}
			records, err := cli.svc.Attendance.Records()
			if err != nil {
				return err
			}
			cli.println(renderCalendar(attendance.MonthlyCalendar(m, students, selected, records)))
			return nil
		},
	}
	calendar.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default current)")
	calendar.Flags().StringVar(&group, "group", "all", "class id, hifz-all, dars-e-nizami-all or all")
	calendar.Flags().StringVar(&studentID, "student", "", "show a single student")

	cmd.AddCommand(mark, clearCmd, markAll, stats, calendar)
	return cmd
}

var (
	dayStyle   = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	tierStyles = map[attendance.Tier]lipgloss.Style{
		attendance.TierPoor:      dayStyle.Copy().Foreground(lipgloss.Color("1")),
		attendance.TierFair:      dayStyle.Copy().Foreground(lipgloss.Color("3")),
		attendance.TierGood:      dayStyle.Copy().Foreground(lipgloss.Color("6")),
		attendance.TierExcellent: dayStyle.Copy().Foreground(lipgloss.Color("2")).Bold(true),
	}
)

func statusStyle(s attendance.Status) lipgloss.Style {
	switch s {
	case attendance.StatusPresent:
		return tierStyles[attendance.TierExcellent]
	case attendance.StatusAbsent:
		return tierStyles[attendance.TierPoor]
	case attendance.StatusLeave:
		return tierStyles[attendance.TierFair]
	}
	return dayStyle
}

func renderCalendar(cal attendance.Calendar) string {
	var b strings.Builder
	title := cal.Month
	if cal.StudentID != "" {
		title += " · " + cal.StudentID
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(dayStyle.Render(wd))
	}
	b.WriteString("\n")

	for _, week := range cal.Weeks() {
		for _, d := range week {
			switch {
			case d == nil:
				b.WriteString(dayStyle.Render(""))
			case d.Status != "":
				b.WriteString(statusStyle(d.Status).Render(strconv.Itoa(d.Day)))
			case d.Counts != nil:
				style, ok := tierStyles[d.Tier()]
				if !ok {
					style = dayStyle
				}
				b.WriteString(style.Render(strconv.Itoa(d.Day)))
			default:
				b.WriteString(dayStyle.Faint(true).Render(strconv.Itoa(d.Day)))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
