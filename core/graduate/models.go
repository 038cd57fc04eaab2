package graduate

import (
	"github.com/go-playground/validator/v10"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

// SanadStatus tracks the completion certificate.
type SanadStatus string

const (
	SanadReceived          SanadStatus = "Received"
	SanadNotYetIssued      SanadStatus = "Not Yet Issued"
	SanadPendingCollection SanadStatus = "Pending Collection"
)

func (s SanadStatus) IsValid() bool {
	return s == SanadReceived || s == SanadNotYetIssued || s == SanadPendingCollection
}

// Progress maps Dars-e-Nizami class ids to their completion.
type Progress map[string]bool

type Graduate struct {
	student.Student
	GraduationDate  string      `json:"graduationDate"` // YYYY-MM-DD
	DegreeCompleted class.Track `json:"degreeCompleted"`
	AlumniPicture   string      `json:"alumniPicture,omitempty"`

	// Dars-e-Nizami specific fields
	DarsENizamiProgress    Progress    `json:"darsENizamiProgress,omitempty"`
	DarsENizamiSanadStatus SanadStatus `json:"darsENizamiSanadStatus,omitempty"`

	// Hifz specific fields
	HifzSanadStatus SanadStatus `json:"hifzSanadStatus,omitempty"`
}

// SanadStatus returns the certificate status of the completed degree.
func (g Graduate) SanadStatus() SanadStatus {
	if g.DegreeCompleted == class.TrackHifz {
		return g.HifzSanadStatus
	}
	return g.DarsENizamiSanadStatus
}

// ClassProgress is one row of a Dars-e-Nizami progress sheet.
type ClassProgress struct {
	Class     class.Class `json:"class"`
	Completed bool        `json:"completed"`
}

// ProgressSheet lists every Dars-e-Nizami class in curriculum order with its completion.
func (g Graduate) ProgressSheet() []ClassProgress {
	classes := class.ByTrack(class.Reference(), class.TrackDarsENizami)
	sheet := make([]ClassProgress, len(classes))
	for i, c := range classes {
		sheet[i] = ClassProgress{Class: c, Completed: g.DarsENizamiProgress[c.ID]}
	}
	return sheet
}

// NewGraduate contains information needed to record a Graduate.
type NewGraduate struct {
	ID                     string      `json:"id"` // set when editing
	Name                   string      `json:"name" validate:"required"`
	Picture                string      `json:"picture" validate:"omitempty,url|datauri"`
	AlumniPicture          string      `json:"alumniPicture" validate:"omitempty,url|datauri"`
	BForm                  string      `json:"bForm"`
	FatherName             string      `json:"fatherName" validate:"required"`
	FatherCnic             string      `json:"fatherCnic"`
	Address                string      `json:"address"`
	Phone                  string      `json:"phone" validate:"required"`
	ClassID                string      `json:"classId"` // last class attended
	GraduationDate         string      `json:"graduationDate" validate:"required,ymd"`
	DegreeCompleted        class.Track `json:"degreeCompleted" validate:"required,track"`
	DarsENizamiProgress    Progress    `json:"darsENizamiProgress" validate:"omitempty,dive,keys,classid,endkeys"`
	DarsENizamiSanadStatus SanadStatus `json:"darsENizamiSanadStatus" validate:"omitempty,sanadstatus"`
	HifzSanadStatus        SanadStatus `json:"hifzSanadStatus" validate:"omitempty,sanadstatus"`
}

func (ng *NewGraduate) Validate(validate *validator.Validate) error {
	ng.Name = core.CleanString(ng.Name)
	ng.FatherName = core.CleanString(ng.FatherName)
	ng.Phone = core.CleanString(ng.Phone)
	ng.GraduationDate = core.CleanString(ng.GraduationDate)
	if err := validate.Struct(ng); err != nil {
		return err
	}
	if ng.DegreeCompleted == class.TrackDarsENizami {
		for id := range ng.DarsENizamiProgress {
			if c, ok := class.Lookup(class.Reference(), id); !ok || c.Track != class.TrackDarsENizami {
				return core.NewValidationError(nil, core.FieldError{
					Field: "darsENizamiProgress",
					Error: "progress can only be recorded for Dars-e-Nizami classes",
				})
			}
		}
	}
	return nil
}

func (ng NewGraduate) graduate() Graduate {
	g := Graduate{
		Student: student.Student{
			ID:         ng.ID,
			Name:       ng.Name,
			Picture:    ng.Picture,
			BForm:      ng.BForm,
			FatherName: ng.FatherName,
			FatherCnic: ng.FatherCnic,
			Address:    ng.Address,
			Phone:      ng.Phone,
			ClassID:    ng.ClassID,
		},
		GraduationDate:  ng.GraduationDate,
		DegreeCompleted: ng.DegreeCompleted,
		AlumniPicture:   ng.AlumniPicture,
	}
	switch ng.DegreeCompleted {
	case class.TrackDarsENizami:
		g.DarsENizamiProgress = ng.DarsENizamiProgress
		g.DarsENizamiSanadStatus = ng.DarsENizamiSanadStatus
	case class.TrackHifz:
		g.HifzSanadStatus = ng.HifzSanadStatus
	}
	return g
}
