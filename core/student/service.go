package student

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
)

const idPrefix = "s"

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// SaveStudent replaces the stored Student with the same ID, or appends it.
		SaveStudent(s Student) (Student, error)
		DeleteStudentsByID(ids ...string) error
	}

	Service struct {
		repo Repository
		ids  core.IDGenerator
	}
)

func NewService(repo Repository, ids core.IDGenerator) *Service {
	return &Service{repo: repo, ids: ids}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	s := Student{
		ID:         svc.ids.NewID(idPrefix),
		Name:       ns.Name,
		Picture:    ns.Picture,
		BForm:      ns.BForm,
		FatherName: ns.FatherName,
		FatherCnic: ns.FatherCnic,
		Address:    ns.Address,
		Phone:      ns.Phone,
		ClassID:    ns.ClassID,
	}
	return svc.repo.SaveStudent(s)
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	s, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	return svc.repo.SaveStudent(us.apply(s))
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteStudentsByID(ids...)
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(core.CleanString(id))
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

// Filter returns the students admitted by filter.Group whose name contains filter.Search, sorted by name.
func (svc *Service) Filter(filter QueryFilter) ([]Student, error) {
	all, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return Filter(all, class.Reference(), filter), nil
}

// Filter is the pure form of Service.Filter.
func Filter(students []Student, classes []class.Class, filter QueryFilter) []Student {
	filter.Clean()
	classIDs := class.ResolveGroup(classes, filter.Group)

	res := make([]Student, 0, len(students))
	for _, s := range students {
		if !class.Admits(classIDs, s.ClassID) {
			continue
		}
		if !core.ContainsFold(s.Name, filter.Search) {
			continue
		}
		res = append(res, s)
	}
	SortByName(res)
	return res
}

func SortByName(students []Student) {
	sort.SliceStable(students, func(i, j int) bool {
		return strings.ToLower(students[i].Name) < strings.ToLower(students[j].Name)
	})
}

// IDs extracts the ids of `students`, keeping their order.
func IDs(students []Student) []string {
	ids := make([]string, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}
	return ids
}
