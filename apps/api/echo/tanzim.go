package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
)

type tanzimApi struct {
	svc      *tanzim.Service
	validate *validator.Validate
}

func registerTanzimAPI(g *echo.Group, deps Deps) {
	api := tanzimApi{svc: deps.Tanzim, validate: deps.Validate}

	tg := g.Group("/tanzim")
	tg.GET("", api.query)
	tg.POST("", api.save)
	tg.GET("/:id", api.retrieve)
	tg.PUT("/:id", api.save)
	tg.DELETE("/:id", api.destroy)
	tg.POST("/:id/documents/:doc", api.attach)
}

func (api *tanzimApi) query(ctx echo.Context) error {
	records, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying tanzim records")
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *tanzimApi) save(ctx echo.Context) error {
	var data tanzim.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	data.ID = ctx.Param("id") // empty on POST
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	r, err := api.svc.Save(data)
	if err != nil {
		return err
	}
	if ctx.Request().Method == http.MethodPost {
		return ctx.JSON(http.StatusCreated, r)
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *tanzimApi) retrieve(ctx echo.Context) error {
	r, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

// attach expects the image as the multipart field `file`.
func (api *tanzimApi) attach(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer func() { _ = f.Close() }()

	dataURL, err := tanzim.EncodeImage(f)
	if err != nil {
		return err
	}
	r, err := api.svc.Attach(ctx.Param("id"), tanzim.Document(ctx.Param("doc")), dataURL)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *tanzimApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting tanzim record")
	}
	return ctx.NoContent(http.StatusNoContent)
}
