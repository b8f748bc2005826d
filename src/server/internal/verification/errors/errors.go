package verificationerrors

import (
	"github.com/dev334/hemo-be/src/server/internal/errors/api"
)

const (
	TokenNotFoundCode = api.ErrorCode("verification_not_found")
)
