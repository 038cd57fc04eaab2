package fee

import (
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

const idPrefix = "mf"

var (
	// errors
	ErrNotFound = errors.New("fee record not found")
)

type (
	Repository interface {
		QueryAllFeeRecords() ([]Record, error)
		GetFeeRecordByID(id string) (Record, error)
		// SaveFeeRecord replaces the stored Record with the same ID, or appends it.
		SaveFeeRecord(r Record) (Record, error)
		DeleteFeeRecordsByID(ids ...string) error
	}

	Service struct {
		repo Repository
		ids  core.IDGenerator
	}
)

func NewService(repo Repository, ids core.IDGenerator) *Service {
	return &Service{repo: repo, ids: ids}
}

// Save edits the Record identified by nr.ID, or creates a new one when nr.ID is empty.
func (svc *Service) Save(nr NewRecord) (Record, error) {
	r := nr.record()
	if r.ID != "" {
		if _, err := svc.repo.GetFeeRecordByID(r.ID); err != nil {
			return Record{}, err
		}
	} else {
		r.ID = svc.ids.NewID(idPrefix)
	}
	return svc.repo.SaveFeeRecord(r)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteFeeRecordsByID(ids...)
}

func (svc *Service) GetByID(id string) (Record, error) {
	return svc.repo.GetFeeRecordByID(core.CleanString(id))
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllFeeRecords()
}

// Draft returns the form for the student's fee of `month`: the existing record when there is one,
// otherwise an unsaved Pending record for DefaultAmount.
func (svc *Service) Draft(studentID, month string) (NewRecord, error) {
	records, err := svc.repo.QueryAllFeeRecords()
	if err != nil {
		return NewRecord{}, err
	}
	if r := Lookup(records, studentID, month); r != nil {
		return NewRecord{
			ID:            r.ID,
			StudentID:     r.StudentID,
			Month:         r.Month,
			Amount:        r.Amount,
			Status:        r.Status,
			ReceiptNumber: r.ReceiptNumber,
		}, nil
	}
	return NewRecord{StudentID: studentID, Month: month, Amount: DefaultAmount, Status: StatusPending}, nil
}

// Lookup returns the student's record for `month`, or nil. With duplicates the last one wins.
func Lookup(records []Record, studentID, month string) *Record {
	var found *Record
	for i := range records {
		if records[i].StudentID == studentID && records[i].Month == month {
			found = &records[i]
		}
	}
	return found
}

// PendingForMonth sums the amounts of `month` still Pending.
func PendingForMonth(records []Record, month string) float64 {
	var total float64
	for _, r := range records {
		if r.Month == month && r.Status == StatusPending {
			total += r.Amount
		}
	}
	return total
}
