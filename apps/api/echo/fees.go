package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

type feeApi struct {
	svc      *fee.Service
	students *student.Service
	validate *validator.Validate
}

func registerFeeAPI(g *echo.Group, deps Deps) {
	api := feeApi{svc: deps.Fees, students: deps.Students, validate: deps.Validate}

	fg := g.Group("/madrasa-fees")
	fg.GET("", api.roster)
	fg.POST("", api.save)
	fg.GET("/draft", api.draft)
	fg.PUT("/:id", api.save)
	fg.DELETE("/:id", api.destroy)
}

func (api *feeApi) roster(ctx echo.Context) error {
	var filter fee.RosterFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to RosterFilter")
	}
	filter.Clean()
	if filter.Month == "" {
		filter.Month = core.FormatMonth(time.Now().UTC())
	}
	if !core.IsMonth(filter.Month) {
		return core.NewValidationError(nil, core.FieldError{Field: "month", Error: "month must be a month formatted as YYYY-MM"})
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return core.NewValidationError(nil, core.FieldError{Field: "status", Error: "status must be one of Paid, Pending"})
	}

	students, err := api.students.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	records, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying fee records")
	}
	return ctx.JSON(http.StatusOK, fee.BuildRoster(students, records, filter))
}

func (api *feeApi) draft(ctx echo.Context) error {
	studentID := core.CleanString(ctx.QueryParam("studentId"))
	month := core.CleanString(ctx.QueryParam("month"))
	if month == "" {
		month = core.FormatMonth(time.Now().UTC())
	}
	if _, err := api.students.GetByID(studentID); err != nil {
		return err
	}
	d, err := api.svc.Draft(studentID, month)
	if err != nil {
		return errors.Wrap(err, "drafting fee record")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *feeApi) save(ctx echo.Context) error {
	var data fee.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	if id := ctx.Param("id"); id != "" {
		data.ID = id
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	code := http.StatusOK
	if data.ID == "" {
		code = http.StatusCreated
	}
	r, err := api.svc.Save(data)
	if err != nil {
		return err
	}
	return ctx.JSON(code, r)
}

func (api *feeApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting fee record")
	}
	return ctx.NoContent(http.StatusNoContent)
}
