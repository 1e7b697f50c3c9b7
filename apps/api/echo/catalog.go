package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edlane/campusdir/core/catalog"
)

type catalogApi struct {
	svc catalog.ServiceInterface
}

func registerCatalogAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc catalog.ServiceInterface) {
	api := catalogApi{svc: svc}

	cg := g.Group("/catalog")
	cg.GET("", api.retrieve)
	cg.POST("/refresh", api.refresh, jwt, adminMiddleware())
}

func (api *catalogApi) retrieve(ctx echo.Context) error {
	cat, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting catalog")
	}
	return ctx.JSON(http.StatusOK, cat)
}

// refresh forces a reload of the cached catalog, for use after lookup data
// changes without waiting out the TTL.
func (api *catalogApi) refresh(ctx echo.Context) error {
	cat, err := api.svc.Refresh(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "refreshing catalog")
	}
	return ctx.JSON(http.StatusOK, cat)
}
