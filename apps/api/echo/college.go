package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edlane/campusdir/core/catalog"
	"github.com/edlane/campusdir/core/college"
)

type collegeApi struct {
	svc college.ServiceInterface
}

func registerCollegeAPI(g *echo.Group, svc college.ServiceInterface) {
	api := collegeApi{svc: svc}

	cg := g.Group("/colleges")
	cg.GET("", api.query)

	dg := cg.Group("/:slug")
	dg.GET("", api.retrieve)
	dg.GET("/courses", api.queryCourses)
	dg.GET("/courses/:id", api.retrieveCourse)
	dg.GET("/gallery", api.gallery)
}

// Handlers

func (api *collegeApi) query(ctx echo.Context) error {
	filter := catalog.DecodeFilter(ctx.QueryParams())

	colleges, err := api.svc.Query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying colleges")
	}
	if colleges == nil {
		colleges = []college.College{}
	}
	return ctx.JSON(http.StatusOK, colleges)
}

func (api *collegeApi) retrieve(ctx echo.Context) error {
	col, err := api.svc.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		if errors.Cause(err) == college.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding college by slug")
	}
	return ctx.JSON(http.StatusOK, col)
}

func (api *collegeApi) queryCourses(ctx echo.Context) error {
	courses, err := api.svc.Courses(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []college.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *collegeApi) retrieveCourse(ctx echo.Context) error {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	crs, err := api.svc.GetCourse(ctx.Request().Context(), ctx.Param("slug"), courseID)
	if err != nil {
		if errors.Cause(err) == college.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *collegeApi) gallery(ctx echo.Context) error {
	images, err := api.svc.Gallery(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return errors.Wrap(err, "querying gallery")
	}
	if images == nil {
		images = []college.GalleryImage{}
	}
	return ctx.JSON(http.StatusOK, GalleryResponse{Images: images})
}

type GalleryResponse struct {
	Images []college.GalleryImage `json:"images"`
}
