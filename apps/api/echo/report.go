package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/messaging"
	"github.com/umairnumplate/noor-ul-masajid/core/report"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

func registerDashboardAPI(g *echo.Group, deps Deps) {
	g.GET("/dashboard", func(ctx echo.Context) error {
		d, err := deps.Dashboard.Get()
		if err != nil {
			return errors.Wrap(err, "building dashboard")
		}
		return ctx.JSON(http.StatusOK, d)
	})
}

type reportResponse struct {
	report.Report
	Text     string `json:"text"`
	ShareURL string `json:"shareUrl"`
}

func registerReportAPI(g *echo.Group, deps Deps) {
	g.GET("/report/:studentId", func(ctx echo.Context) error {
		s, err := deps.Students.GetByID(ctx.Param("studentId"))
		if err != nil {
			return err
		}
		records, err := deps.Attendance.Records()
		if err != nil {
			return errors.Wrap(err, "querying attendance")
		}

		r := report.Build(s, deps.Classes(), records)
		if ai, _ := strconv.ParseBool(ctx.QueryParam("ai")); ai {
			r = r.WithRemark(report.GenerateRemark(ctx.Request().Context(), deps.Generator, r))
		}
		return ctx.JSON(http.StatusOK, reportResponse{Report: r, Text: r.Text(), ShareURL: r.ShareURL()})
	})
}

type (
	bulkMessage struct {
		Group      string   `json:"group"`
		StudentIDs []string `json:"studentIds"` // overrides group when set
		Message    string   `json:"message" validate:"required"`
	}

	bulkMessageLinks struct {
		Recipients    int               `json:"recipients"`
		SMS           string            `json:"sms"`
		ClipboardText string            `json:"clipboardText"`
		WhatsApp      map[string]string `json:"whatsapp"` // {studentId: url}
	}
)

func registerMessageAPI(g *echo.Group, deps Deps, appName string) {
	g.POST("/messages", func(ctx echo.Context) error {
		var data bulkMessage
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to bulkMessage")
		}
		data.Message = core.CleanString(data.Message)
		if err := deps.Validate.Struct(data); err != nil {
			return err
		}

		var students []student.Student
		if len(data.StudentIDs) > 0 {
			for _, id := range data.StudentIDs {
				s, err := deps.Students.GetByID(id)
				if err != nil {
					return err
				}
				students = append(students, s)
			}
		} else {
			var err error
			if students, err = deps.Students.Filter(student.QueryFilter{Group: data.Group}); err != nil {
				return errors.Wrap(err, "filtering students")
			}
		}

		phones := make([]string, len(students))
		links := bulkMessageLinks{Recipients: len(students), WhatsApp: make(map[string]string, len(students))}
		for i, s := range students {
			phones[i] = s.Phone
			links.WhatsApp[s.ID] = messaging.WhatsAppMessageURL(s.Phone, data.Message)
		}
		links.SMS = messaging.SMSURI(phones, data.Message)
		links.ClipboardText = messaging.ClipboardText(appName, data.Message, phones)
		return ctx.JSON(http.StatusOK, links)
	})
}
