package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edlane/campusdir/core/enquiry"
)

type enquiryApi struct {
	svc      enquiry.ServiceInterface
	validate *validator.Validate
}

func registerEnquiryAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc enquiry.ServiceInterface, validate *validator.Validate) {
	api := enquiryApi{svc: svc, validate: validate}

	g.POST("/enquiries", api.create, jwt)
}

func (api *enquiryApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data enquiry.NewEnquiry
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEnquiry")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	enq, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating enquiry")
	}
	return ctx.JSON(http.StatusCreated, EnquiryResponse{Reference: enq.Reference})
}

type EnquiryResponse struct {
	Reference string `json:"reference"`
}
