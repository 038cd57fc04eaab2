package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
)

func (cli *commandLine) tanzimCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tanzim", Short: "Manage examination-board admissions"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List admissions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			records, err := cli.svc.Tanzim.QueryAll()
			if err != nil {
				return err
			}
			rows := make([][]string, len(records))
			for i, r := range records {
				docs := "incomplete"
				if r.RequiredDocuments.Complete() {
					docs = "complete"
				}
				rows[i] = []string{
					r.ID, r.StudentID, strconv.Itoa(r.ExamYear), r.TanzimClassID,
					fee.FormatAmount(r.AdmissionFee), string(r.FeeStatus), docs,
				}
			}
			cli.table([]string{"ID", "Student", "Year", "Class", "Fee", "Status", "Documents"}, rows)
			cli.printf("Pending: %s\n", fee.FormatAmount(tanzim.PendingTotal(records)))
			return nil
		},
	}

	var (
		nr                                tanzim.NewRecord
		feeStatus                         string
		otherAmount                       float64
		otherStatus, otherReceipt         string
		hasCnic, hasPhotos, hasFeeReceipt bool
	)
	add := &cobra.Command{
		Use:   "add STUDENT_ID",
		Short: "Admit a student for an exam year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.student(args[0])
			if err != nil {
				return err
			}
			nr.StudentID = s.ID
			nr.FeeStatus = fee.Status(feeStatus)
			if cmd.Flags().Changed("other-fee") {
				nr.OtherFeeAmount = null.Float64From(otherAmount)
				nr.OtherFeeStatus = null.StringFrom(otherStatus)
				if otherReceipt != "" {
					nr.OtherFeeReceiptNumber = null.StringFrom(otherReceipt)
				}
			}
			nr.RequiredDocuments = tanzim.RequiredDocuments{
				CnicBForm:      hasCnic,
				PassportPhotos: hasPhotos,
				FeeReceipt:     hasFeeReceipt,
			}
			if err = nr.Validate(cli.svc.Validate); err != nil {
				return err
			}
			r, err := cli.svc.Tanzim.Save(nr)
			if err != nil {
				return err
			}
			cli.printf("admission %s recorded\n", r.ID)
			return nil
		},
	}
	f := add.Flags()
	f.IntVar(&nr.ExamYear, "year", time.Now().Year(), "exam year")
	f.StringVar(&nr.TanzimClassID, "class", "", "class id registered with the board")
	f.Float64Var(&nr.AdmissionFee, "fee", 0, "admission fee")
	f.StringVar(&feeStatus, "status", string(fee.StatusPending), "Paid or Pending")
	f.StringVar(&nr.FeeReceiptNumber, "receipt", "", "admission fee receipt number")
	f.Float64Var(&otherAmount, "other-fee", 0, "other fee amount")
	f.StringVar(&otherStatus, "other-status", string(fee.StatusPending), "other fee status")
	f.StringVar(&otherReceipt, "other-receipt", "", "other fee receipt number")
	f.BoolVar(&hasCnic, "has-cnic", false, "CNIC/B-Form copy handed in")
	f.BoolVar(&hasPhotos, "has-photos", false, "passport photos handed in")
	f.BoolVar(&hasFeeReceipt, "has-fee-receipt", false, "fee receipt handed in")

	attach := &cobra.Command{
		Use:       "attach ID DOCUMENT FILE",
		Short:     "Attach a scanned document (cnic, photo1, photo2, receipt)",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"cnic", "photo1", "photo2", "receipt"},
		RunE: func(_ *cobra.Command, args []string) error {
			file, err := os.Open(args[2])
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			dataURL, err := tanzim.EncodeImage(file)
			if err != nil {
				return err
			}
			r, err := cli.svc.Tanzim.Attach(args[0], tanzim.Document(args[1]), dataURL)
			if err != nil {
				return err
			}
			cli.printf("%s attached to %s\n", args[1], r.ID)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete admissions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, id := range args {
				if _, err := cli.svc.Tanzim.GetByID(id); err != nil {
					return fmt.Errorf("%w: %q", err, id)
				}
			}
			if err := cli.confirm("Delete " + pluralize(len(args), "admission") + "?"); err != nil {
				return err
			}
			if err := cli.svc.Tanzim.Delete(args...); err != nil {
				return err
			}
			cli.printf("%s deleted\n", pluralize(len(args), "admission"))
			return nil
		},
	}

	cmd.AddCommand(list, add, attach, del)
	return cmd
}
