package userstorage

import "github.com/cockroachdb/errors/domains"

var (
	UserNotFoundMark = domains.New("user_not_found")
	EmailExistsMark  = domains.New("email_exists")
	DefaultErrorMark = domains.New("default_error")
)
