package main

import (
	"strings"
	"time"

	"github.com/dev334/hemo-be/src/server/application"
	"github.com/dev334/hemo-be/src/shared/config"
	"github.com/dev334/hemo-be/src/shared/config/dev"
	"github.com/dev334/hemo-be/src/shared/config/envvar"
	"github.com/dev334/hemo-be/src/shared/lib/env"
	"github.com/dev334/hemo-be/src/shared/lib/mailer"
)

const (
	dynamoDBRegion = "us-east-2"
	bearerTokenTTL = 24 * time.Hour
)

func main() {
	var appConfig application.Config

	switch env.Get() {
	case env.Production:
		commaSeparatedOrigins := envvar.MustGet("ALLOWED_FE_ORIGINS")
		allowedOrigins := strings.Split(commaSeparatedOrigins, ",")

		appConfig = application.Config{
			DynamoConfig: config.ProdDynamo{
				AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
				SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
				Region:          dynamoDBRegion,
			},
			RabbitMQURL:       envvar.MustGet(envvar.RABBITMQ_URL),
			RabbitMQQueueName: envvar.MustGet(envvar.RABBITMQ_QUEUE_NAME),
			Mailer: mailer.SMTPMailer{
				Config: config.SMTP{
					Host:     envvar.MustGet(envvar.SMTP_HOST),
					Port:     envvar.MustGet(envvar.SMTP_PORT),
					User:     envvar.MustGet(envvar.AUTH_EMAIL),
					Password: envvar.MustGet(envvar.AUTH_PASS),
				},
			},
			TokenSecret:        envvar.MustGet(envvar.TOKEN_SECRET),
			TokenTTL:           bearerTokenTTL,
			PublicURL:          envvar.MustGet(envvar.PUBLIC_URL),
			CORSAllowedOrigins: allowedOrigins,
			Port:               ":5000",
			Log:                true,
		}
	case env.Development:
		appConfig = application.Config{
			DynamoConfig:       dev.DynamoConfig,
			RabbitMQURL:        dev.RabbitMQHost,
			RabbitMQQueueName:  dev.RabbitMQQueueName,
			Mailer:             mailer.SMTPMailer{Config: dev.SMTPConfig},
			TokenSecret:        dev.TokenSecret,
			TokenTTL:           bearerTokenTTL,
			PublicURL:          dev.PublicURL,
			CORSAllowedOrigins: []string{"*"},
			Port:               ":5000",
			Log:                true,
		}

	default:
		panic("Unexpected environment")
	}

	app := application.NewApp(appConfig)
	if err := app.Start(); err != nil {
		panic(err)
	}
}
