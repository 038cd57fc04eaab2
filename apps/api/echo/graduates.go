package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
)

type graduateApi struct {
	svc      *graduate.Service
	validate *validator.Validate
}

func registerGraduateAPI(g *echo.Group, deps Deps) {
	api := graduateApi{svc: deps.Graduates, validate: deps.Validate}

	gg := g.Group("/graduates")
	gg.GET("", api.query)
	gg.POST("", api.save)
	gg.GET("/:id", api.retrieve)
	gg.PUT("/:id", api.save)
	gg.DELETE("/:id", api.destroy)
}

func (api *graduateApi) query(ctx echo.Context) error {
	graduates, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying graduates")
	}
	return ctx.JSON(http.StatusOK, graduates)
}

func (api *graduateApi) save(ctx echo.Context) error {
	var data graduate.NewGraduate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGraduate")
	}
	data.ID = ctx.Param("id") // empty on POST
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	g, err := api.svc.Save(data)
	if err != nil {
		return err
	}
	if ctx.Request().Method == http.MethodPost {
		return ctx.JSON(http.StatusCreated, g)
	}
	return ctx.JSON(http.StatusOK, g)
}

func (api *graduateApi) retrieve(ctx echo.Context) error {
	g, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"graduate": g, "progress": g.ProgressSheet()})
}

func (api *graduateApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting graduate")
	}
	return ctx.NoContent(http.StatusNoContent)
}
