package dashboard

import (
	"time"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

type Dashboard struct {
	Date                string                      `json:"date"`
	TotalStudents       int                         `json:"totalStudents"`
	TotalTeachers       int                         `json:"totalTeachers"`
	PresentToday        int                         `json:"presentToday"`
	TanzimAdmissions    int                         `json:"tanzimAdmissions"`
	PendingMadrasaFees  float64                     `json:"pendingMadrasaFees"` // current month
	PendingTanzimFees   float64                     `json:"pendingTanzimFees"`  // all exam years
	RecentAnnouncements []announcement.Announcement `json:"announcements"`      // newest first
}

// Snapshot holds every collection the dashboard reads.
type Snapshot struct {
	Students      []student.Student
	Teachers      []teacher.Teacher
	Attendance    []attendance.Record
	TanzimRecords []tanzim.Record
	FeeRecords    []fee.Record
	Announcements []announcement.Announcement
}

// Build computes the dashboard as of `now`, taken in UTC.
func Build(snap Snapshot, now time.Time) Dashboard {
	now = now.UTC()
	anns := make([]announcement.Announcement, len(snap.Announcements))
	copy(anns, snap.Announcements)
	announcement.SortNewestFirst(anns)

	return Dashboard{
		Date:                core.FormatDate(now),
		TotalStudents:       len(snap.Students),
		TotalTeachers:       len(snap.Teachers),
		PresentToday:        attendance.PresentOn(snap.Attendance, attendance.Today(now)),
		TanzimAdmissions:    len(snap.TanzimRecords),
		PendingMadrasaFees:  fee.PendingForMonth(snap.FeeRecords, core.FormatMonth(now)),
		PendingTanzimFees:   tanzim.PendingTotal(snap.TanzimRecords),
		RecentAnnouncements: anns,
	}
}

type Service struct {
	students      student.Repository
	teachers      teacher.Repository
	attendance    attendance.Repository
	tanzim        tanzim.Repository
	fees          fee.Repository
	announcements announcement.Repository
	now           func() time.Time
}

func NewService(
	students student.Repository,
	teachers teacher.Repository,
	attendance attendance.Repository,
	tanzim tanzim.Repository,
	fees fee.Repository,
	announcements announcement.Repository,
) *Service {
	return &Service{
		students:      students,
		teachers:      teachers,
		attendance:    attendance,
		tanzim:        tanzim,
		fees:          fees,
		announcements: announcements,
		now:           time.Now,
	}
}

func (svc *Service) Get() (Dashboard, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Students, err = svc.students.QueryAllStudents(); err != nil {
		return Dashboard{}, err
	}
	if snap.Teachers, err = svc.teachers.QueryAllTeachers(); err != nil {
		return Dashboard{}, err
	}
	if snap.Attendance, err = svc.attendance.QueryAllRecords(); err != nil {
		return Dashboard{}, err
	}
	if snap.TanzimRecords, err = svc.tanzim.QueryAllTanzimRecords(); err != nil {
		return Dashboard{}, err
	}
	if snap.FeeRecords, err = svc.fees.QueryAllFeeRecords(); err != nil {
		return Dashboard{}, err
	}
	if snap.Announcements, err = svc.announcements.QueryAllAnnouncements(); err != nil {
		return Dashboard{}, err
	}
	return Build(snap, svc.now()), nil
}
