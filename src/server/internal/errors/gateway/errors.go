package gateway

import (
	"fmt"
	"net/http"

	"github.com/dev334/hemo-be/src/server/api_error"
	"github.com/dev334/hemo-be/src/server/internal/errors/api"
	"github.com/dev334/hemo-be/src/server/internal/errors/auth"
	usererrors "github.com/dev334/hemo-be/src/server/internal/user/errors"
	verificationerrors "github.com/dev334/hemo-be/src/server/internal/verification/errors"
	"github.com/labstack/echo/v4"
)

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:                 http.StatusInternalServerError,
	auth.BadCredentialsCode:              http.StatusUnauthorized,
	auth.UnverifiedAccountCode:           http.StatusUnauthorized,
	usererrors.ValidationFailedCode:      http.StatusBadRequest,
	usererrors.BadUserDataCode:           http.StatusBadRequest,
	usererrors.ExistingEmailCode:         http.StatusConflict,
	usererrors.UserNotFoundCode:          http.StatusNotFound,
	usererrors.MailSendFailedCode:        http.StatusBadGateway,
	verificationerrors.TokenNotFoundCode: http.StatusNotFound,
}

func ErrorResponse(c echo.Context, err *api.Error) error {
	statusCode, ok := httpStatusCodeMap[err.ErrorCode]
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", err.ErrorCode)
		panic(msg)
	}

	return c.JSON(statusCode, api_error.JSONAPIError{
		Code:         string(err.ErrorCode),
		Msg:          err.UserMessage,
		ErrorDetails: err.Error(),
	})
}
