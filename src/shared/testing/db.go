package testing

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	dynamolib "github.com/dev334/hemo-be/src/shared/lib/dynamo"
	"github.com/guregu/dynamo"
	. "github.com/onsi/gomega"
)

const (
	UsersTable         = "Users"
	EmailClaimsTable   = "UserEmails"
	VerificationsTable = "UserVerifications"
)

type dbUser struct {
	ID           string `dynamo:"id,hash"`
	Name         string `dynamo:"username"`
	Email        string `dynamo:"email"`
	PasswordHash string `dynamo:"password_hash"`
	Verified     bool   `dynamo:"verified"`
}

type emailClaim struct {
	Email  string `dynamo:"email,hash"`
	UserID string `dynamo:"user_id"`
}

type verification struct {
	Token  string `dynamo:"token,hash"`
	UserID string `dynamo:"user_id"`
}

func MakeTestDB(testRegion string) dynamolib.DynamoDBWrapper {
	dbSession := session.Must(session.NewSession())

	config := aws.NewConfig().
		WithCredentials(credentials.NewStaticCredentials(DynamoAccessKeyID, DynamoSecretAccessKey, "")).
		WithEndpoint(DynamoDBHost).
		WithRegion(testRegion)

	db := dynamo.New(dbSession, config)
	return dynamolib.NewDynamoDBWrapper(db)
}

func ResetDB(db dynamolib.DynamoDBWrapper) {
	DeleteAllTables(db)
	CreateAllTables(db)
	EnsureUsers(db)
}

func BeforeSuiteDB(testRegion string) dynamolib.DynamoDBWrapper {
	db := MakeTestDB(testRegion)
	DeleteAllTables(db)
	return db
}

func AfterSuiteDB(db dynamolib.DynamoDBWrapper) {
	DeleteAllTables(db)
}

func CreateAllTables(db dynamolib.DynamoDBWrapper) {
	err := db.CreateTable(UsersTable, dbUser{}).Run()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	err = db.CreateTable(EmailClaimsTable, emailClaim{}).Run()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	err = db.CreateTable(VerificationsTable, verification{}).Run()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

func DeleteAllTables(db dynamolib.DynamoDBWrapper) {
	tableResults := db.ListTables()
	tableNames := ExpectSuccess(tableResults.All())

	for _, tableName := range tableNames {
		err := db.Table(tableName).DeleteTable().Run()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}
}

// CountTable scans the whole table - fine at test sizes.
func CountTable(db dynamolib.DynamoDBWrapper, tableName string) int {
	values := []map[string]any{}
	err := db.Table(tableName).Scan().All(&values)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return len(values)
}
