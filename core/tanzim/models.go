package tanzim

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
)

type RequiredDocuments struct {
	CnicBForm      bool `json:"cnicBForm"`
	PassportPhotos bool `json:"passportPhotos"`
	FeeReceipt     bool `json:"feeReceipt"`
}

// Complete reports whether every required document was handed in.
func (d RequiredDocuments) Complete() bool {
	return d.CnicBForm && d.PassportPhotos && d.FeeReceipt
}

// Record is an examination-board admission of a student for one exam year.
// It carries two independent fees: the admission fee and an optional other fee.
type Record struct {
	ID               string     `json:"id"`
	StudentID        string     `json:"studentId"`
	ExamYear         int        `json:"examYear"`
	TanzimClassID    string     `json:"tanzimClassId"`
	AdmissionFee     float64    `json:"admissionFee"`
	FeeStatus        fee.Status `json:"feeStatus"`
	FeeReceiptNumber string     `json:"feeReceiptNumber"`

	OtherFeeAmount        null.Float64 `json:"otherFeeAmount"`
	OtherFeeStatus        null.String  `json:"otherFeeStatus"`
	OtherFeeReceiptNumber null.String  `json:"otherFeeReceiptNumber"`

	// base64 data URLs
	CnicBFormCopy  string `json:"cnicBFormCopy"`
	PassportPhoto1 string `json:"passportPhoto1"`
	PassportPhoto2 string `json:"passportPhoto2"`
	FeeReceiptCopy string `json:"feeReceiptCopy"`

	RequiredDocuments RequiredDocuments `json:"requiredDocuments"`
}

// PendingAmount is what the record still owes: the admission fee when pending plus the other
// fee when it is set and pending.
func (r Record) PendingAmount() float64 {
	var amount float64
	if r.FeeStatus == fee.StatusPending {
		amount += r.AdmissionFee
	}
	if r.OtherFeeStatus.Valid && fee.Status(r.OtherFeeStatus.String) == fee.StatusPending &&
		r.OtherFeeAmount.Valid && r.OtherFeeAmount.Float64 != 0 {
		amount += r.OtherFeeAmount.Float64
	}
	return amount
}

// NewRecord contains information needed to save a Record; ID is set when editing.
type NewRecord struct {
	ID                    string            `json:"id"`
	StudentID             string            `json:"studentId" validate:"required"`
	ExamYear              int               `json:"examYear" validate:"required,min=2000,max=2100"`
	TanzimClassID         string            `json:"tanzimClassId" validate:"required,classid"`
	AdmissionFee          float64           `json:"admissionFee" validate:"min=0"`
	FeeStatus             fee.Status        `json:"feeStatus" validate:"required,feestatus"`
	FeeReceiptNumber      string            `json:"feeReceiptNumber"`
	OtherFeeAmount        null.Float64      `json:"otherFeeAmount"`
	OtherFeeStatus        null.String       `json:"otherFeeStatus"`
	OtherFeeReceiptNumber null.String       `json:"otherFeeReceiptNumber"`
	CnicBFormCopy         string            `json:"cnicBFormCopy" validate:"omitempty,datauri"`
	PassportPhoto1        string            `json:"passportPhoto1" validate:"omitempty,datauri"`
	PassportPhoto2        string            `json:"passportPhoto2" validate:"omitempty,datauri"`
	FeeReceiptCopy        string            `json:"feeReceiptCopy" validate:"omitempty,datauri"`
	RequiredDocuments     RequiredDocuments `json:"requiredDocuments"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.TanzimClassID = core.CleanString(nr.TanzimClassID)
	nr.FeeReceiptNumber = core.CleanString(nr.FeeReceiptNumber)
	if err := validate.Struct(nr); err != nil {
		return err
	}

	var flds []core.FieldError
	if nr.OtherFeeAmount.Valid && nr.OtherFeeAmount.Float64 < 0 {
		flds = append(flds, core.FieldError{Field: "otherFeeAmount", Error: "otherFeeAmount must be 0 or greater"})
	}
	if nr.OtherFeeStatus.Valid && !fee.Status(nr.OtherFeeStatus.String).IsValid() {
		flds = append(flds, core.FieldError{Field: "otherFeeStatus", Error: "otherFeeStatus must be one of Paid, Pending"})
	}
	if nr.OtherFeeAmount.Valid && !nr.OtherFeeStatus.Valid {
		flds = append(flds, core.FieldError{Field: "otherFeeStatus", Error: "otherFeeStatus is required with otherFeeAmount"})
	}
	if len(flds) > 0 {
		return core.NewValidationError(nil, flds...)
	}
	return nil
}

func (nr NewRecord) record() Record {
	return Record{
		ID:                    nr.ID,
		StudentID:             nr.StudentID,
		ExamYear:              nr.ExamYear,
		TanzimClassID:         nr.TanzimClassID,
		AdmissionFee:          nr.AdmissionFee,
		FeeStatus:             nr.FeeStatus,
		FeeReceiptNumber:      nr.FeeReceiptNumber,
		OtherFeeAmount:        nr.OtherFeeAmount,
		OtherFeeStatus:        nr.OtherFeeStatus,
		OtherFeeReceiptNumber: nr.OtherFeeReceiptNumber,
		CnicBFormCopy:         nr.CnicBFormCopy,
		PassportPhoto1:        nr.PassportPhoto1,
		PassportPhoto2:        nr.PassportPhoto2,
		FeeReceiptCopy:        nr.FeeReceiptCopy,
		RequiredDocuments:     nr.RequiredDocuments,
	}
}
