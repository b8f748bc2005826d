package usererrors

import (
	"github.com/dev334/hemo-be/src/server/internal/errors/api"
)

const (
	ValidationFailedCode = api.ErrorCode("invalid_input")
	BadUserDataCode      = api.ErrorCode("bad_user_data")
	ExistingEmailCode    = api.ErrorCode("email_exists")
	UserNotFoundCode     = api.ErrorCode("user_not_found")
	MailSendFailedCode   = api.ErrorCode("mail_send_failed")
)
