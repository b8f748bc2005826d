package dynamolib

import "github.com/guregu/dynamo"

// DynamoDBWrapper is the seam every storage package takes instead of the
// raw client, so tests and constructors share one handle type.
type DynamoDBWrapper struct {
	*dynamo.DB
}

func NewDynamoDBWrapper(db *dynamo.DB) DynamoDBWrapper {
	return DynamoDBWrapper{DB: db}
}
