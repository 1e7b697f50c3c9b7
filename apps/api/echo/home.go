package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edlane/campusdir/core/home"
)

type homeApi struct {
	svc home.ServiceInterface
}

func registerHomeAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc home.ServiceInterface) {
	api := homeApi{svc: svc}

	hg := g.Group("/home")
	hg.GET("", api.retrieve)
	hg.PUT("/sections/:name", api.toggleSection, jwt, adminMiddleware())
}

func (api *homeApi) retrieve(ctx echo.Context) error {
	page, err := api.svc.GetPage(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting home page")
	}
	return ctx.JSON(http.StatusOK, page)
}

func (api *homeApi) toggleSection(ctx echo.Context) error {
	var data SectionToggleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SectionToggleRequest")
	}

	name := home.SectionName(ctx.Param("name"))
	if err := api.svc.ToggleSection(ctx.Request().Context(), name, data.IsActive); err != nil {
		if errors.Cause(err) == home.ErrUnknownSection {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return errors.Wrap(err, "toggling section")
	}
	return ctx.JSON(http.StatusOK, home.SectionToggle{Section: name, IsActive: data.IsActive})
}

type SectionToggleRequest struct {
	IsActive bool `json:"isActive"`
}
