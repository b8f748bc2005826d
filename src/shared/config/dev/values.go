package dev

import "github.com/dev334/hemo-be/src/shared/config"

// DynamoDB
const (
	DynamoAccessKeyID     = "local"
	DynamoSecretAccessKey = "local"
	DynamoDBHost          = "http://localhost:8000"
	DynamoDBRegion        = "localhost"
)

var DynamoConfig = config.LocalDynamo{
	AccessKeyID:     DynamoAccessKeyID,
	SecretAccessKey: DynamoSecretAccessKey,
	Region:          DynamoDBRegion,
	Host:            DynamoDBHost,
}

// RabbitMQ
const (
	RabbitMQHost      = "amqp://localhost:5672"
	RabbitMQQueueName = "hemo-account-events-dev"
)

// SMTP
var SMTPConfig = config.SMTP{
	Host:     "localhost",
	Port:     "1025",
	User:     "dev@hemo.localhost",
	Password: "dev",
}

// Server
const (
	PublicURL   = "http://localhost:3000"
	TokenSecret = "dev-token-secret"
)
