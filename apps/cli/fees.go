package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
)

func (cli *commandLine) feesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "fees", Short: "Track monthly Madrasa fees"}

	var filter fee.RosterFilter
	var status string
	roster := &cobra.Command{
		Use:   "roster",
		Short: "Show the month's fee roster",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			filter.Status = fee.Status(status)
			filter.Clean()
			if !core.IsMonth(filter.Month) {
				return fmt.Errorf("month %q must be formatted as YYYY-MM", filter.Month)
			}
			if filter.Status != "" && !filter.Status.IsValid() {
				return fmt.Errorf("status %q must be one of Paid, Pending", status)
			}
			students, err := cli.svc.Students.QueryAll()
			if err != nil {
				return err
			}
			records, err := cli.svc.Fees.QueryAll()
			if err != nil {
				return err
			}

			r := fee.BuildRoster(students, records, filter)
			cli.println(titleStyle.Render("Madrasa fees " + r.Month))
			rows := make([][]string, len(r.Rows))
			for i, row := range r.Rows {
				id := mutedStyle.Render("-")
				if row.HasRecord() {
					id = row.Record.ID
				}
				rows[i] = []string{row.Student.ID, row.Student.Name, row.Amount, string(row.Status), row.Receipt, id}
			}
			cli.table([]string{"Student", "Name", "Amount", "Status", "Receipt", "Record"}, rows)
			cli.printf("Total %s  Paid %s  Pending %s\n",
				fee.FormatAmount(r.Summary.Total), fee.FormatAmount(r.Summary.Paid), fee.FormatAmount(r.Summary.Pending))
			return nil
		},
	}
	roster.Flags().StringVar(&filter.Month, "month", core.FormatMonth(time.Now().UTC()), "month as YYYY-MM")
	roster.Flags().StringVar(&filter.Group, "group", "all", "class id, hifz-all, dars-e-nizami-all or all")
	roster.Flags().StringVar(&filter.Search, "search", "", "match on name")
	roster.Flags().StringVar(&status, "status", "", "Paid or Pending (default all)")

	var (
		month, setStatus, receipt string
		amount                    float64
	)
	set := &cobra.Command{
		Use:   "set STUDENT_ID",
		Short: "Record a student's fee for a month; flags left out keep the current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.student(args[0])
			if err != nil {
				return err
			}
			nr, err := cli.svc.Fees.Draft(s.ID, month)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("amount") {
				nr.Amount = amount
			}
			if cmd.Flags().Changed("status") {
				nr.Status = fee.Status(setStatus)
			}
			if cmd.Flags().Changed("receipt") {
				nr.ReceiptNumber = null.StringFrom(receipt)
			}
			if err = nr.Validate(cli.svc.Validate); err != nil {
				return err
			}
			r, err := cli.svc.Fees.Save(nr)
			if err != nil {
				return err
			}
			cli.printf("%s: %s %s for %s (%s)\n", s.Name, fee.FormatAmount(r.Amount), r.Status, r.Month, r.ID)
			return nil
		},
	}
	set.Flags().StringVar(&month, "month", core.FormatMonth(time.Now().UTC()), "month as YYYY-MM")
	set.Flags().Float64Var(&amount, "amount", fee.DefaultAmount, "amount due")
	set.Flags().StringVar(&setStatus, "status", string(fee.StatusPending), "Paid or Pending")
	set.Flags().StringVar(&receipt, "receipt", "", "receipt number")

	del := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete fee records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, id := range args {
				if _, err := cli.svc.Fees.GetByID(id); err != nil {
					return fmt.Errorf("%w: %q", err, id)
				}
			}
			if err := cli.confirm("Delete " + pluralize(len(args), "fee record") + "?"); err != nil {
				return err
			}
			if err := cli.svc.Fees.Delete(args...); err != nil {
				return err
			}
			cli.printf("%s deleted\n", pluralize(len(args), "fee record"))
			return nil
		},
	}

	cmd.AddCommand(roster, set, del)
	return cmd
}
