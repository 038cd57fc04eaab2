package attendance

import (
	"github.com/go-playground/validator/v10"
)

type (
	Repository interface {
		QueryAllRecords() ([]Record, error)
		// UpdateRecords stores the result of fn applied to the whole collection.
		UpdateRecords(fn func(records []Record) []Record) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Records() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

// SetStatus records `status` for the student on `date`, dropping any previous record of the pair.
func (svc *Service) SetStatus(studentID, date string, status Status) error {
	rec := Record{StudentID: studentID, Date: date, Status: status}
	if err := svc.validate.Struct(rec); err != nil {
		return err
	}
	return svc.repo.UpdateRecords(func(records []Record) []Record {
		return append(without(records, func(r Record) bool { return r.matches(studentID, date) }), rec)
	})
}

// ClearStatus removes the student's record for `date`, if any.
func (svc *Service) ClearStatus(studentID, date string) error {
	return svc.repo.UpdateRecords(func(records []Record) []Record {
		return without(records, func(r Record) bool { return r.matches(studentID, date) })
	})
}

// MarkAll sets the same status on `date` for every student in `studentIDs`.
func (svc *Service) MarkAll(studentIDs []string, date string, status Status) error {
	if err := svc.validate.Struct(Record{StudentID: "*", Date: date, Status: status}); err != nil {
		return err
	}
	ids := make(map[string]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		ids[id] = struct{}{}
	}
	return svc.repo.UpdateRecords(func(records []Record) []Record {
		kept := without(records, func(r Record) bool {
			_, ok := ids[r.StudentID]
			return ok && r.Date == date
		})
		seen := make(map[string]struct{}, len(ids))
		for _, id := range studentIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			kept = append(kept, Record{StudentID: id, Date: date, Status: status})
		}
		return kept
	})
}

// StatusOf returns the student's status on `date`; ok is false when nothing was recorded.
func (svc *Service) StatusOf(studentID, date string) (status Status, ok bool, err error) {
	records, err := svc.repo.QueryAllRecords()
	if err != nil {
		return "", false, err
	}
	status, ok = StatusOf(records, studentID, date)
	return status, ok, nil
}

func StatusOf(records []Record, studentID, date string) (Status, bool) {
	for _, r := range records {
		if r.matches(studentID, date) {
			return r.Status, true
		}
	}
	return "", false
}

func without(records []Record, drop func(Record) bool) []Record {
	res := make([]Record, 0, len(records))
	for _, r := range records {
		if !drop(r) {
			res = append(res, r)
		}
	}
	return res
}
