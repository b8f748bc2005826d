package verificationstorage

import "github.com/cockroachdb/errors/domains"

var (
	TokenNotFoundMark = domains.New("verification_not_found")
	DefaultErrorMark  = domains.New("default_error")
)
