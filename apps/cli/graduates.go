package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
)

func (cli *commandLine) graduateCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "graduate", Short: "Manage alumni"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List graduates",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			graduates, err := cli.svc.Graduates.QueryAll()
			if err != nil {
				return err
			}
			rows := make([][]string, len(graduates))
			for i, g := range graduates {
				rows[i] = []string{g.ID, g.Name, string(g.DegreeCompleted), g.GraduationDate, string(g.SanadStatus())}
			}
			cli.table([]string{"ID", "Name", "Degree", "Graduated", "Sanad"}, rows)
			return nil
		},
	}

	var (
		ng        graduate.NewGraduate
		degree    string
		completed []string
		sanad     string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a graduate",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			ng.DegreeCompleted = class.Track(degree)
			if len(completed) > 0 {
				ng.DarsENizamiProgress = make(graduate.Progress, len(completed))
				for _, id := range completed {
					ng.DarsENizamiProgress[strings.TrimSpace(id)] = true
				}
			}
			switch ng.DegreeCompleted {
			case class.TrackDarsENizami:
				ng.DarsENizamiSanadStatus = graduate.SanadStatus(sanad)
			case class.TrackHifz:
				ng.HifzSanadStatus = graduate.SanadStatus(sanad)
			}
			if err := ng.Validate(cli.svc.Validate); err != nil {
				return err
			}
			g, err := cli.svc.Graduates.Save(ng)
			if err != nil {
				return err
			}
			cli.printf("graduate %s recorded\n", g.ID)
			return nil
		},
	}
	studentFlags(add, &ng.Name, &ng.Picture, &ng.BForm, &ng.FatherName, &ng.FatherCnic, &ng.Address, &ng.Phone, &ng.ClassID)
	add.Flags().StringVar(&ng.AlumniPicture, "alumni-picture", "", "picture taken at graduation")
	add.Flags().StringVar(&ng.GraduationDate, "graduated", "", "graduation date as YYYY-MM-DD")
	add.Flags().StringVar(&degree, "degree", string(class.TrackDarsENizami), "Dars-e-Nizami or Hifz")
	add.Flags().StringSliceVar(&completed, "completed", nil, "Dars-e-Nizami classes completed (dn1,dn2,...)")
	add.Flags().StringVar(&sanad, "sanad", "", "Received, Not Yet Issued or Pending Collection")

	del := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete graduates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, id := range args {
				if _, err := cli.svc.Graduates.GetByID(id); err != nil {
					return fmt.Errorf("%w: %q", err, id)
				}
			}
			if err := cli.confirm("Delete " + pluralize(len(args), "graduate") + "?"); err != nil {
				return err
			}
			if err := cli.svc.Graduates.Delete(args...); err != nil {
				return err
			}
			cli.printf("%s deleted\n", pluralize(len(args), "graduate"))
			return nil
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}
