package fee

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

// DefaultAmount pre-fills the amount of a new monthly fee record.
const DefaultAmount float64 = 1500

// Status of a fee; shared by the monthly ledger and Tanzim admissions.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
)

var Statuses = []Status{StatusPaid, StatusPending}

func (s Status) IsValid() bool {
	return s == StatusPaid || s == StatusPending
}

// Record is the monthly fee of one student. There is at most one per (StudentID, Month) in
// practice but nothing enforces it; lookups keep the last one.
type Record struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"studentId"`
	Month         string      `json:"month"` // YYYY-MM
	Amount        float64     `json:"amount"`
	Status        Status      `json:"status"`
	ReceiptNumber null.String `json:"receiptNumber,omitempty"`
}

// NewRecord contains information needed to save a Record; ID is set when editing.
type NewRecord struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"studentId" validate:"required"`
	Month         string      `json:"month" validate:"required,ym"`
	Amount        float64     `json:"amount" validate:"min=0"`
	Status        Status      `json:"status" validate:"required,feestatus"`
	ReceiptNumber null.String `json:"receiptNumber"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.Month = core.CleanString(nr.Month)
	if nr.ReceiptNumber.Valid {
		nr.ReceiptNumber.String = core.CleanString(nr.ReceiptNumber.String)
		if nr.ReceiptNumber.String == "" {
			nr.ReceiptNumber = null.String{}
		}
	}
	return validate.Struct(nr)
}

func (nr NewRecord) record() Record {
	return Record{
		ID:            nr.ID,
		StudentID:     nr.StudentID,
		Month:         nr.Month,
		Amount:        nr.Amount,
		Status:        nr.Status,
		ReceiptNumber: nr.ReceiptNumber,
	}
}
