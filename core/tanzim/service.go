package tanzim

import (
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

const idPrefix = "tz"

var (
	// errors
	ErrNotFound = errors.New("tanzim record not found")
)

type (
	Repository interface {
		QueryAllTanzimRecords() ([]Record, error)
		GetTanzimRecordByID(id string) (Record, error)
		// SaveTanzimRecord replaces the stored Record with the same ID, or appends it.
		SaveTanzimRecord(r Record) (Record, error)
		DeleteTanzimRecordsByID(ids ...string) error
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
		if _, err := svc.repo.GetTanzimRecordByID(r.ID); err != nil {
			return Record{}, err
		}
	} else {
		r.ID = svc.ids.NewID(idPrefix)
	}
	return svc.repo.SaveTanzimRecord(r)
}

// Attach stores a document image on the record under `doc` and ticks the matching checklist item.
func (svc *Service) Attach(id string, doc Document, dataURL string) (Record, error) {
	r, err := svc.repo.GetTanzimRecordByID(core.CleanString(id))
	if err != nil {
		return Record{}, err
	}
	if err := r.attach(doc, dataURL); err != nil {
		return Record{}, err
	}
	return svc.repo.SaveTanzimRecord(r)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteTanzimRecordsByID(ids...)
}

func (svc *Service) GetByID(id string) (Record, error) {
	return svc.repo.GetTanzimRecordByID(core.CleanString(id))
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllTanzimRecords()
}

// PendingTotal sums what every record still owes, across all exam years.
func PendingTotal(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += r.PendingAmount()
	}
	return total
}
