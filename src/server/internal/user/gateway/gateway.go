package usergateway

import (
	"net/http"

	"github.com/dev334/hemo-be/src/server/internal/errors/api"
	"github.com/dev334/hemo-be/src/server/internal/errors/gateway"
	"github.com/dev334/hemo-be/src/server/internal/lib/request"
	userentity "github.com/dev334/hemo-be/src/server/internal/user/entity"
	usererrors "github.com/dev334/hemo-be/src/server/internal/user/errors"
	userusecase "github.com/dev334/hemo-be/src/server/internal/user/usecase"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var validate = validator.New()

type Gateway struct {
	usecase userusecase.Usecase
}

func NewGateway(usecase userusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) Register(c echo.Context) error {
	ctx := request.Context(c)

	body := RegisterJSON{}
	if apiErr := bindAndValidate(c, &body); apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	user, apiErr := g.usecase.Register(ctx, body.Name, body.Email, body.Password)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, NewUserJSON(user))
}

func (g Gateway) Verify(c echo.Context, tokenString string) error {
	ctx := request.Context(c)

	alreadyVerified, apiErr := g.usecase.Verify(ctx, tokenString)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	message := "Verified"
	if alreadyVerified {
		message = "Already verified"
	}

	return c.JSON(http.StatusOK, MessageJSON{Message: message})
}

func (g Gateway) Login(c echo.Context) error {
	ctx := request.Context(c)

	body := LoginJSON{}
	if apiErr := bindAndValidate(c, &body); apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	user, bearerToken, apiErr := g.usecase.Login(ctx, body.Email, body.Password, body.Token)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	// clients historically read the token off this header
	c.Response().Header().Set("auth_token", bearerToken)

	return c.JSON(http.StatusOK, LoginResponseJSON{
		Token: bearerToken,
		User:  NewUserJSON(user),
	})
}

func (g Gateway) CreateProfile(c echo.Context) error {
	ctx := request.Context(c)

	body := CreateProfileJSON{}
	if apiErr := bindAndValidate(c, &body); apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	profile := userentity.Profile{
		DateOfBirth: body.DateOfBirth,
		Location:    body.Location,
		Weight:      body.Weight,
		Gender:      body.Gender,
		BloodType:   body.BloodType,
		Phone:       body.Phone,
	}

	if apiErr := g.usecase.CreateProfile(ctx, body.UserID, profile); apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, MessageJSON{Message: "Profile created"})
}

func (g Gateway) EditProfile(c echo.Context) error {
	ctx := request.Context(c)

	body := EditProfileJSON{}
	if apiErr := bindAndValidate(c, &body); apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	apiErr := g.usecase.EditProfile(ctx, body.UserID, body.Location, body.Weight, body.Phone)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, MessageJSON{Message: "Profile updated"})
}

func (g Gateway) ChangePassword(c echo.Context) error {
	ctx := request.Context(c)

	body := ChangePasswordJSON{}
	if apiErr := bindAndValidate(c, &body); apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	apiErr := g.usecase.ChangePassword(ctx, body.UserID, body.OldPassword, body.NewPassword)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, MessageJSON{Message: "Password changed"})
}

func (g Gateway) DeleteAccount(c echo.Context, userID string) error {
	ctx := request.Context(c)

	if apiErr := g.usecase.DeleteAccount(ctx, userID); apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, MessageJSON{Message: "Account deleted"})
}

func (g Gateway) GetUser(c echo.Context, userID string) error {
	ctx := request.Context(c)

	user, apiErr := g.usecase.GetUser(ctx, userID)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, NewUserJSON(user))
}

func (g Gateway) ListUsers(c echo.Context) error {
	ctx := request.Context(c)

	users, apiErr := g.usecase.ListUsers(ctx)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	userJSONs := []UserJSON{}
	for _, user := range users {
		userJSONs = append(userJSONs, NewUserJSON(user))
	}

	return c.JSON(http.StatusOK, userJSONs)
}

func bindAndValidate(c echo.Context, body any) *api.Error {
	if err := c.Bind(body); err != nil {
		err = errors.Wrap(err, "Failed to bind request body")
		return api.CommitError(err,
			usererrors.BadUserDataCode,
			"The request data received was malformed")
	}

	if err := validate.Struct(body); err != nil {
		err = errors.Wrap(err, "Request body failed validation")
		return api.CommitError(err,
			usererrors.ValidationFailedCode,
			"The request data is missing required fields or has invalid values")
	}

	return nil
}
