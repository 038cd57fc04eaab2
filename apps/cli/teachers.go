package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

func (cli *commandLine) teacherCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "teacher", Short: "Manage teachers and their timetables"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List teachers",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			teachers, err := cli.svc.Teachers.QueryAll()
			if err != nil {
				return err
			}
			rows := make([][]string, len(teachers))
			for i, t := range teachers {
				rows[i] = []string{t.ID, t.Name, t.Contact, t.Qualifications, strconv.Itoa(len(t.Timetable))}
			}
			cli.table([]string{"ID", "Name", "Contact", "Qualifications", "Slots"}, rows)
			return nil
		},
	}

	var (
		nt    teacher.NewTeacher
		slots []string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a teacher",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, s := range slots {
				e, err := parseSlot(s)
				if err != nil {
					return err
				}
				nt.Timetable = append(nt.Timetable, e)
			}
			if err := nt.Validate(cli.svc.Validate); err != nil {
				return err
			}
			t, err := cli.svc.Teachers.Create(nt)
			if err != nil {
				return err
			}
			cli.printf("teacher %s registered\n", t.ID)
			return nil
		},
	}
	add.Flags().StringVar(&nt.Name, "name", "", "full name")
	add.Flags().StringVar(&nt.Picture, "picture", "", "picture URL")
	add.Flags().StringVar(&nt.Contact, "contact", "", "contact phone")
	add.Flags().StringVar(&nt.Qualifications, "qualifications", "", "qualifications")
	add.Flags().StringArrayVar(&slots, "slot", nil, "timetable slot as DAY,SUBJECT,CLASS,HH:MM,HH:MM (repeatable)")

	del := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete teachers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, id := range args {
				if _, err := cli.svc.Teachers.GetByID(id); err != nil {
					return fmt.Errorf("%w: %q", err, id)
				}
			}
			if err := cli.confirm("Delete " + pluralize(len(args), "teacher") + "?"); err != nil {
				return err
			}
			if err := cli.svc.Teachers.Delete(args...); err != nil {
				return err
			}
			cli.printf("%s deleted\n", pluralize(len(args), "teacher"))
			return nil
		},
	}

	var day string
	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Show the day's timetable across teachers",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			wd := teacher.Weekday(day)
			if day == "" {
				wd = teacher.Weekday(time.Now().Weekday().String())
			}
			if !wd.IsValid() {
				return fmt.Errorf("unknown day %q", day)
			}
			slots, err := cli.svc.Teachers.Schedule(wd)
			if err != nil {
				return err
			}
			cli.println(titleStyle.Render(string(wd)))
			if len(slots) == 0 {
				cli.println(mutedStyle.Render("no classes scheduled"))
				return nil
			}
			rows := make([][]string, len(slots))
			for i, s := range slots {
				rows[i] = []string{s.StartTime + "-" + s.EndTime, s.Subject, s.ClassID, s.TeacherName}
			}
			cli.table([]string{"Time", "Subject", "Class", "Teacher"}, rows)
			return nil
		},
	}
	schedule.Flags().StringVar(&day, "day", "", "weekday (default today)")

	cmd.AddCommand(list, add, del, schedule)
	return cmd
}

func parseSlot(s string) (teacher.TimetableEntry, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return teacher.TimetableEntry{}, fmt.Errorf("slot %q: want DAY,SUBJECT,CLASS,START,END", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return teacher.TimetableEntry{
		Day:       teacher.Weekday(parts[0]),
		Subject:   parts[1],
		ClassID:   parts[2],
		StartTime: parts[3],
		EndTime:   parts[4],
	}, nil
}
