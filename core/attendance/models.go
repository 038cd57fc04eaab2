package attendance

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLeave}

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLeave
}

// Record is unique per (StudentID, Date); writes replace any previous record of the pair.
type Record struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required,ymd"` // YYYY-MM-DD
	Status    Status `json:"status" validate:"required,attendancestatus"`
}

func (r Record) matches(studentID, date string) bool {
	return r.StudentID == studentID && r.Date == date
}
