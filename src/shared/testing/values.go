package testing

import (
	"os"

	"github.com/dev334/hemo-be/src/shared/config/dev"
	"github.com/onsi/gomega"
)

// DynamoDB
const (
	DynamoAccessKeyID     = dev.DynamoAccessKeyID
	DynamoSecretAccessKey = dev.DynamoSecretAccessKey
	DynamoDBHost          = dev.DynamoDBHost
)

// Server
const (
	PublicURL = "http://localhost:5010"
)

func SetTestEnv() {
	err := os.Setenv("ENVIRONMENT", "test")
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())
}

func ExpectSuccess[T any](value T, err error) T {
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())
	return value
}
