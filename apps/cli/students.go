package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

func (cli *commandLine) studentCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "student", Short: "Manage enrolled students"}

	var filter student.QueryFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List students, optionally by class or track group",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			students, err := cli.svc.Students.Filter(filter)
			if err != nil {
				return err
			}
			cli.printStudents(students)
			return nil
		},
	}
	list.Flags().StringVar(&filter.Group, "group", "all", "class id, hifz-all, dars-e-nizami-all or all")
	list.Flags().StringVar(&filter.Search, "search", "", "match on name")

	var ns student.NewStudent
	add := &cobra.Command{
		Use:   "add",
		Short: "Enrol a student",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := ns.Validate(cli.svc.Validate); err != nil {
				return err
			}
			s, err := cli.svc.Students.Create(ns)
			if err != nil {
				return err
			}
			cli.printf("student %s enrolled\n", s.ID)
			return nil
		},
	}
	studentFlags(add, &ns.Name, &ns.Picture, &ns.BForm, &ns.FatherName, &ns.FatherCnic, &ns.Address, &ns.Phone, &ns.ClassID)

	var us student.UpdateStudent
	edit := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a student; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := cli.student(args[0]); err != nil {
				return err
			}
			if err := us.Validate(cli.svc.Validate); err != nil {
				return err
			}
			s, err := cli.svc.Students.Update(args[0], us)
			if err != nil {
				return err
			}
			cli.printf("student %s updated\n", s.ID)
			return nil
		},
	}
	studentFlags(edit, &us.Name, &us.Picture, &us.BForm, &us.FatherName, &us.FatherCnic, &us.Address, &us.Phone, &us.ClassID)

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show a student's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := cli.student(args[0])
			if err != nil {
				return err
			}
			className := "N/A"
			if c, ok := class.Lookup(cli.svc.DB.Classes(), s.ClassID); ok {
				className = c.Name
			}
			cli.println(titleStyle.Render(s.Name))
			cli.table([]string{"Field", "Value"}, [][]string{
				{"ID", s.ID},
				{"Class", className},
				{"Father", s.FatherName},
				{"Father CNIC", s.FatherCnic},
				{"B-Form", s.BForm},
				{"Phone", s.Phone},
				{"Address", s.Address},
				{"Picture", s.Picture},
			})
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete students",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, id := range args {
				if _, err := cli.student(id); err != nil {
					return err
				}
			}
			if err := cli.confirm("Delete " + pluralize(len(args), "student") + "?"); err != nil {
				return err
			}
			if err := cli.svc.Students.Delete(args...); err != nil {
				return err
			}
			cli.printf("%s deleted\n", pluralize(len(args), "student"))
			return nil
		},
	}

	cmd.AddCommand(list, add, edit, show, del)
	return cmd
}

func studentFlags(cmd *cobra.Command, name, picture, bForm, fatherName, fatherCnic, address, phone, classID *string) {
	f := cmd.Flags()
	f.StringVar(name, "name", "", "full name")
	f.StringVar(picture, "picture", "", "picture URL")
	f.StringVar(bForm, "bform", "", "B-Form number")
	f.StringVar(fatherName, "father", "", "father's name")
	f.StringVar(fatherCnic, "father-cnic", "", "father's CNIC")
	f.StringVar(address, "address", "", "home address")
	f.StringVar(phone, "phone", "", "contact phone")
	f.StringVar(classID, "class", "", "class id (dn1..dn9, h1..h3)")
}

func (cli *commandLine) printStudents(students []student.Student) {
	classes := cli.svc.DB.Classes()
	rows := make([][]string, len(students))
	for i, s := range students {
		className := s.ClassID
		if c, ok := class.Lookup(classes, s.ClassID); ok {
			className = c.Name
		}
		rows[i] = []string{s.ID, s.Name, s.FatherName, className, s.Phone}
	}
	cli.table([]string{"ID", "Name", "Father", "Class", "Phone"}, rows)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
