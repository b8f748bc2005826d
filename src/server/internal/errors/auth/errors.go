package auth

import (
	"github.com/dev334/hemo-be/src/server/internal/errors/api"
)

const (
	BadCredentialsCode    = api.ErrorCode("bad_credentials")
	UnverifiedAccountCode = api.ErrorCode("unverified_account")
)
