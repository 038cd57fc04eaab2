package teacher

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

const (
	idPrefix      = "t"
	entryIDPrefix = "tt"
)

var (
	// errors
	ErrNotFound = errors.New("teacher not found")
)

type (
	Repository interface {
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id string) (Teacher, error)
		// SaveTeacher replaces the stored Teacher with the same ID, or appends it.
		SaveTeacher(t Teacher) (Teacher, error)
		DeleteTeachersByID(ids ...string) error
	}

	Service struct {
		repo Repository
		ids  core.IDGenerator
	}
)

func NewService(repo Repository, ids core.IDGenerator) *Service {
	return &Service{repo: repo, ids: ids}
}

func (svc *Service) withEntryIDs(entries []TimetableEntry) []TimetableEntry {
	res := make([]TimetableEntry, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			e.ID = svc.ids.NewID(entryIDPrefix)
		}
		res[i] = e
	}
	return res
}

func (svc *Service) Create(nt NewTeacher) (Teacher, error) {
	t := Teacher{
		ID:             svc.ids.NewID(idPrefix),
		Name:           nt.Name,
		Picture:        nt.Picture,
		Contact:        nt.Contact,
		Qualifications: nt.Qualifications,
		Timetable:      svc.withEntryIDs(nt.Timetable),
	}
	return svc.repo.SaveTeacher(t)
}

func (svc *Service) Update(id string, upd UpdateTeacher) (Teacher, error) {
	t, err := svc.repo.GetTeacherByID(id)
	if err != nil {
		return Teacher{}, err
	}
	t.Name = upd.Name
	t.Picture = upd.Picture
	t.Contact = upd.Contact
	t.Qualifications = upd.Qualifications
	if upd.Timetable != nil {
		t.Timetable = svc.withEntryIDs(upd.Timetable)
	}
	return svc.repo.SaveTeacher(t)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteTeachersByID(ids...)
}

func (svc *Service) GetByID(id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(core.CleanString(id))
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

// Slot is a timetable entry together with the teacher giving it.
type Slot struct {
	TimetableEntry
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
}

// Schedule lists every slot held on `day` across teachers, ordered by start time.
func (svc *Service) Schedule(day Weekday) ([]Slot, error) {
	teachers, err := svc.repo.QueryAllTeachers()
	if err != nil {
		return nil, err
	}
	return Schedule(teachers, day), nil
}

func Schedule(teachers []Teacher, day Weekday) []Slot {
	slots := make([]Slot, 0)
	for _, t := range teachers {
		for _, e := range t.Timetable {
			if e.Day == day {
				slots = append(slots, Slot{TimetableEntry: e, TeacherID: t.ID, TeacherName: t.Name})
			}
		}
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].StartTime < slots[j].StartTime })
	return slots
}
