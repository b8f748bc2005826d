package envvar

import (
	"fmt"
	"os"
)

const (
	AWS_ACCESS_KEY_ID     = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY = "AWS_SECRET_ACCESS_KEY"
	RABBITMQ_URL          = "RABBITMQ_URL"
	RABBITMQ_QUEUE_NAME   = "RABBITMQ_QUEUE_NAME"
	SMTP_HOST             = "SMTP_HOST"
	SMTP_PORT             = "SMTP_PORT"
	AUTH_EMAIL            = "AUTH_EMAIL"
	AUTH_PASS             = "AUTH_PASS"
	TOKEN_SECRET          = "TOKEN_SECRET"
	PUBLIC_URL            = "PUBLIC_URL"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}
