package echoapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/account"
)

const signatureHeader = "X-Webhook-Signature"

type accountApi struct {
	svc      account.ServiceInterface
	conf     *core.Config
	validate *validator.Validate
}

func registerAccountAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc account.ServiceInterface, conf *core.Config, validate *validator.Validate) {
	api := accountApi{svc: svc, conf: conf, validate: validate}

	ag := g.Group("/accounts")

	// un-authed endpoints
	ag.POST("/login", api.login)
	ag.POST("/provider-hook", api.providerHook)

	// authed endpoints
	ag.POST("/token-refresh", api.refreshToken, jwt)
}

// Handlers

func (api *accountApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := authenticate(ctx.Request().Context(), data.Username, data.Password, api.svc)
	if err != nil {
		if errors.Cause(err) == account.ErrNotFound {
			return core.NewValidationError(errors.New("invalid credentials"))
		}
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *accountApi) refreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// providerHook mirrors identities pushed by the external auth provider.
// The payload is authenticated with an HMAC-SHA256 signature over the raw
// body, hex-encoded in the X-Webhook-Signature header.
func (api *accountApi) providerHook(ctx echo.Context) error {
	body, err := ioutil.ReadAll(ctx.Request().Body)
	if err != nil {
		return errors.Wrap(err, "reading webhook body")
	}

	if !api.checkSignature(body, ctx.Request().Header.Get(signatureHeader)) {
		return errBadSignature
	}

	var data account.ProviderAccount
	if err = json.Unmarshal(body, &data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	if err = api.validate.Struct(&data); err != nil {
		return err
	}

	if _, err = api.svc.SyncProviderAccount(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "syncing provider account")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *accountApi) checkSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(api.conf.ProviderWebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return validate.Struct(lr)
}
