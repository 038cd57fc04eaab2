package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

type attendanceApi struct {
	deps Deps
}

func registerAttendanceAPI(g *echo.Group, deps Deps) {
	api := attendanceApi{deps: deps}

	ag := g.Group("/attendance")
	ag.GET("", api.daily)
	ag.PUT("", api.set)
	ag.POST("/mark-all", api.markAll)
	ag.GET("/calendar", api.calendar)
}

type (
	dailyQuery struct {
		Date   string `query:"date"` // defaults to today
		Group  string `query:"group"`
		Search string `query:"search"`
	}

	dailyRow struct {
		Student student.Student   `json:"student"`
		Status  attendance.Status `json:"status,omitempty"`
	}

	dailySheet struct {
		Date  string            `json:"date"`
		Stats attendance.Counts `json:"stats"`
		Rows  []dailyRow        `json:"rows"`
	}

	setStatus struct {
		StudentID string            `json:"studentId" validate:"required"`
		Date      string            `json:"date" validate:"required,ymd"`
		Status    attendance.Status `json:"status" validate:"omitempty,attendancestatus"` // empty clears
	}

	markAll struct {
		Group  string            `json:"group"`
		Date   string            `json:"date" validate:"required,ymd"`
		Status attendance.Status `json:"status" validate:"required,attendancestatus"`
	}

	calendarQuery struct {
		Month     string `query:"month"` // defaults to the current month
		Group     string `query:"group"`
		StudentID string `query:"studentId"`
	}
)

func defaultDate(date string) string {
	if date = core.CleanString(date); date == "" {
		return attendance.Today(time.Now())
	}
	return date
}

func (api *attendanceApi) daily(ctx echo.Context) error {
	var q dailyQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to dailyQuery")
	}
	q.Date = defaultDate(q.Date)
	if !core.IsDate(q.Date) {
		return core.NewValidationError(nil, core.FieldError{Field: "date", Error: "date must be a date formatted as YYYY-MM-DD"})
	}

	students, err := api.deps.Students.Filter(student.QueryFilter{Group: q.Group, Search: q.Search})
	if err != nil {
		return errors.Wrap(err, "filtering students")
	}
	records, err := api.deps.Attendance.Records()
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}

	sheet := dailySheet{
		Date:  q.Date,
		Stats: attendance.DailyStats(students, records, q.Date),
		Rows:  make([]dailyRow, len(students)),
	}
	for i, s := range students {
		status, _ := attendance.StatusOf(records, s.ID, q.Date)
		sheet.Rows[i] = dailyRow{Student: s, Status: status}
	}
	return ctx.JSON(http.StatusOK, sheet)
}

func (api *attendanceApi) set(ctx echo.Context) error {
	var data setStatus
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to setStatus")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	if _, err := api.deps.Students.GetByID(data.StudentID); err != nil {
		return err
	}

	var err error
	if data.Status == "" {
		err = api.deps.Attendance.ClearStatus(data.StudentID, data.Date)
	} else {
		err = api.deps.Attendance.SetStatus(data.StudentID, data.Date, data.Status)
	}
	if err != nil {
		return errors.Wrap(err, "setting attendance")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *attendanceApi) markAll(ctx echo.Context) error {
	var data markAll
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to markAll")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	students, err := api.deps.Students.Filter(student.QueryFilter{Group: data.Group})
	if err != nil {
		return errors.Wrap(err, "filtering students")
	}
	if err = api.deps.Attendance.MarkAll(student.IDs(students), data.Date, data.Status); err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"marked": len(students)})
}

func (api *attendanceApi) calendar(ctx echo.Context) error {
	var q calendarQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to calendarQuery")
	}
	month := time.Now().UTC()
	if q.Month = core.CleanString(q.Month); q.Month != "" {
		m, err := time.Parse(core.MonthLayout, q.Month)
		if err != nil {
			return core.NewValidationError(nil, core.FieldError{Field: "month", Error: "month must be a month formatted as YYYY-MM"})
		}
		month = m
	}

	students, err := api.deps.Students.Filter(student.QueryFilter{Group: q.Group})
	if err != nil {
		return errors.Wrap(err, "filtering students")
	}
	var selected *student.Student
	if q.StudentID = core.CleanString(q.StudentID); q.StudentID != "" {
		s, err := api.deps.Students.GetByID(q.StudentID)
		if err != nil {
			return err
		}
		selected = &s
	}
	records, err := api.deps.Attendance.Records()
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, attendance.MonthlyCalendar(month, students, selected, records))
}
