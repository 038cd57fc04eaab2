package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

type Student struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
	BForm      string `json:"bForm"`
	FatherName string `json:"fatherName"`
	FatherCnic string `json:"fatherCnic"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	ClassID    string `json:"classId"` // not checked against the class list
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name       string `json:"name" validate:"required"`
	Picture    string `json:"picture" validate:"omitempty,url|datauri"`
	BForm      string `json:"bForm"`
	FatherName string `json:"fatherName" validate:"required"`
	FatherCnic string `json:"fatherCnic"`
	Address    string `json:"address"`
	Phone      string `json:"phone" validate:"required"`
	ClassID    string `json:"classId" validate:"required"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.FatherName = core.CleanString(ns.FatherName)
	ns.Phone = core.CleanString(ns.Phone)
	ns.ClassID = core.CleanString(ns.ClassID)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Blank fields keep their current value.
type UpdateStudent struct {
	Name       string `json:"name"`
	Picture    string `json:"picture" validate:"omitempty,url|datauri"`
	BForm      string `json:"bForm"`
	FatherName string `json:"fatherName"`
	FatherCnic string `json:"fatherCnic"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	ClassID    string `json:"classId"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.FatherName = core.CleanString(us.FatherName)
	us.Phone = core.CleanString(us.Phone)
	us.ClassID = core.CleanString(us.ClassID)
	return validate.Struct(us)
}

func (us UpdateStudent) apply(s Student) Student {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&s.Name, us.Name)
	set(&s.Picture, us.Picture)
	set(&s.BForm, us.BForm)
	set(&s.FatherName, us.FatherName)
	set(&s.FatherCnic, us.FatherCnic)
	set(&s.Address, us.Address)
	set(&s.Phone, us.Phone)
	set(&s.ClassID, us.ClassID)
	return s
}

type QueryFilter struct {
	Group  string `query:"group"`  // class id, track group (see class.ResolveGroup) or "all"
	Search string `query:"search"` // case-insensitive match on Student.Name
}

func (qf *QueryFilter) Clean() {
	qf.Group = core.CleanString(qf.Group)
	qf.Search = core.CleanString(qf.Search)
}
