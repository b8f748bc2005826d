package testing

import (
	dynamolib "github.com/dev334/hemo-be/src/shared/lib/dynamo"
	"github.com/dev334/hemo-be/src/shared/lib/password"
	. "github.com/onsi/gomega"
)

type User struct {
	ID           string `dynamo:"id,hash"`
	Name         string `dynamo:"username"`
	Email        string `dynamo:"email"`
	Verified     bool   `dynamo:"verified"`
	PasswordHash string `dynamo:"password_hash"`
	Password     string `dynamo:"-"`
}

var (
	// in the system and has confirmed their email
	PrimaryUser = User{
		ID:       "primary-user-id",
		Name:     "Primary User Name",
		Email:    "primary@hemo.com",
		Password: "primary-password",
		Verified: true,
	}

	// in the system and verified, exists so list results have company
	OtherUser = User{
		ID:       "other-user-id",
		Name:     "Other User Name",
		Email:    "other@hemo.com",
		Password: "other-password",
		Verified: true,
	}

	// registered but never clicked the confirmation link
	UnverifiedUser = User{
		ID:       "unverified-user-id",
		Name:     "Unverified User Name",
		Email:    "unverified@hemo.com",
		Password: "unverified-password",
		Verified: false,
	}

	// not saved to the DB at all
	NoAccountUser = User{
		ID:       "not-in-db-id",
		Name:     "Not In DB User",
		Email:    "adude@someoneelse.com",
		Password: "no-account-password",
		Verified: false,
	}
)

func EnsureUsers(db dynamolib.DynamoDBWrapper) {
	EnsureUser(db, PrimaryUser)
	EnsureUser(db, OtherUser)
	EnsureUser(db, UnverifiedUser)
}

func EnsureUser(db dynamolib.DynamoDBWrapper, u User) {
	if u.PasswordHash == "" {
		u.PasswordHash = ExpectSuccess(password.Hash(u.Password))
	}

	err := db.Table(UsersTable).Put(u).Run()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	claim := emailClaim{
		Email:  u.Email,
		UserID: u.ID,
	}

	err = db.Table(EmailClaimsTable).Put(claim).Run()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}
