package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/messaging"
	"github.com/umairnumplate/noor-ul-masajid/core/report"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

func (cli *commandLine) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's overview",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			d, err := cli.svc.Dashboard.Get()
			if err != nil {
				return err
			}
			cli.println(titleStyle.Render(cli.svc.Config.AppName + " · " + d.Date))
			cli.table([]string{"", ""}, [][]string{
				{"Students", fmt.Sprint(d.TotalStudents)},
				{"Teachers", fmt.Sprint(d.TotalTeachers)},
				{"Present today", fmt.Sprint(d.PresentToday)},
				{"Tanzim admissions", fmt.Sprint(d.TanzimAdmissions)},
				{"Pending Madrasa fees", fee.FormatAmount(d.PendingMadrasaFees)},
				{"Pending Tanzim fees", fee.FormatAmount(d.PendingTanzimFees)},
			})
			cli.printAnnouncements(d.RecentAnnouncements)
			return nil
		},
	}
}

func (cli *commandLine) reportCmd() *cobra.Command {
	var ai, share bool
	cmd := &cobra.Command{
		Use:   "report STUDENT_ID",
		Short: "Print a student's progress report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.student(args[0])
			if err != nil {
				return err
			}
			records, err := cli.svc.Attendance.Records()
			if err != nil {
				return err
			}
			r := report.Build(s, cli.svc.DB.Classes(), records)
			if ai {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				r = r.WithRemark(report.GenerateRemark(ctx, cli.svc.Generator, r))
			}
			cli.println(r.Text())
			if share {
				cli.println()
				cli.println(r.ShareURL())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ai, "ai", false, "write the remark with the assistant")
	cmd.Flags().BoolVar(&share, "share", false, "print a WhatsApp link addressed to the parent")
	return cmd
}

func (cli *commandLine) messageCmd() *cobra.Command {
	var (
		group      string
		studentIDs []string
	)
	cmd := &cobra.Command{Use: "message", Short: "Prepare bulk messages to parents"}
	cmd.PersistentFlags().StringVar(&group, "group", "all", "class id, hifz-all, dars-e-nizami-all or all")
	cmd.PersistentFlags().StringSliceVar(&studentIDs, "student", nil, "individual students (overrides --group)")

	recipients := func() ([]student.Student, error) {
		if len(studentIDs) == 0 {
			return cli.svc.Students.Filter(student.QueryFilter{Group: group})
		}
		students := make([]student.Student, 0, len(studentIDs))
		for _, id := range studentIDs {
			s, err := cli.student(id)
			if err != nil {
				return nil, err
			}
			students = append(students, s)
		}
		return students, nil
	}
	phones := func(students []student.Student) []string {
		res := make([]string, len(students))
		for i, s := range students {
			res[i] = s.Phone
		}
		return res
	}

	sms := &cobra.Command{
		Use:   "sms MESSAGE",
		Short: "Print an sms: link addressed to every recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			students, err := recipients()
			if err != nil {
				return err
			}
			cli.println(messaging.SMSURI(phones(students), args[0]))
			return nil
		},
	}

	whatsapp := &cobra.Command{
		Use:   "whatsapp MESSAGE",
		Short: "Print one WhatsApp link per recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			students, err := recipients()
			if err != nil {
				return err
			}
			rows := make([][]string, len(students))
			for i, s := range students {
				rows[i] = []string{s.Name, messaging.WhatsAppMessageURL(s.Phone, args[0])}
			}
			cli.table([]string{"Student", "Link"}, rows)
			return nil
		},
	}

	cp := &cobra.Command{
		Use:   "copy MESSAGE",
		Short: "Copy the message and the recipients' numbers to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			students, err := recipients()
			if err != nil {
				return err
			}
			text := messaging.ClipboardText(cli.svc.Config.AppName, args[0], phones(students))
			if err = clipboardWriteAll(text); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			cli.printf("message for %s copied\n", pluralize(len(students), "recipient"))
			return nil
		},
	}

	cmd.AddCommand(sms, whatsapp, cp)
	return cmd
}
