package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
)

type announcementApi struct {
	svc        *announcement.Service
	validate   *validator.Validate
	recipients []string
}

func registerAnnouncementAPI(g *echo.Group, deps Deps, recipients []string) {
	api := announcementApi{svc: deps.Announcements, validate: deps.Validate, recipients: recipients}

	ag := g.Group("/announcements")
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.POST("/generate", api.generate)
	ag.DELETE("/:id", api.destroy)
	ag.POST("/:id/publish", api.publish)
}

func (api *announcementApi) query(ctx echo.Context) error {
	anns, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, anns)
}

func (api *announcementApi) create(ctx echo.Context) error {
	var data announcement.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	a, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating announcement")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *announcementApi) generate(ctx echo.Context) error {
	var data struct {
		Topic string `json:"topic"`
	}
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding topic")
	}
	draft, err := api.svc.Generate(ctx.Request().Context(), data.Topic)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, draft)
}

func (api *announcementApi) publish(ctx echo.Context) error {
	var data struct {
		Recipients []string `json:"recipients"`
	}
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding recipients")
	}
	if len(data.Recipients) == 0 {
		data.Recipients = api.recipients
	}
	if err := api.svc.Publish(ctx.Param("id"), data.Recipients); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusAccepted)
}

func (api *announcementApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting announcement")
	}
	return ctx.NoContent(http.StatusNoContent)
}
