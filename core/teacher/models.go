package teacher

import (
	"github.com/go-playground/validator/v10"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) IsValid() bool {
	for _, wd := range Weekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// TimetableEntry is one weekly slot; overlapping slots are allowed.
type TimetableEntry struct {
	ID        string  `json:"id"`
	Day       Weekday `json:"day" validate:"required,weekday"`
	Subject   string  `json:"subject" validate:"required"`
	ClassID   string  `json:"classId" validate:"required"`
	StartTime string  `json:"startTime" validate:"required,hhmm"` // HH:MM
	EndTime   string  `json:"endTime" validate:"required,hhmm"`   // HH:MM
}

type Teacher struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Picture        string           `json:"picture"`
	Contact        string           `json:"contact"`
	Qualifications string           `json:"qualifications"`
	Timetable      []TimetableEntry `json:"timetable"`
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Name           string           `json:"name" validate:"required"`
	Picture        string           `json:"picture" validate:"omitempty,url|datauri"`
	Contact        string           `json:"contact" validate:"required"`
	Qualifications string           `json:"qualifications"`
	Timetable      []TimetableEntry `json:"timetable" validate:"dive"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Contact = core.CleanString(nt.Contact)
	nt.Qualifications = core.CleanString(nt.Qualifications)
	for i := range nt.Timetable {
		nt.Timetable[i].Subject = core.CleanString(nt.Timetable[i].Subject)
	}
	return validate.Struct(nt)
}

// UpdateTeacher replaces every field of an existing Teacher; a nil Timetable keeps the current one.
type UpdateTeacher NewTeacher

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	return (*NewTeacher)(ut).Validate(validate)
}
