package userstorage

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/errors"
	userentity "github.com/dev334/hemo-be/src/server/internal/user/entity"
	dynamolib "github.com/dev334/hemo-be/src/shared/lib/dynamo"
	"github.com/dev334/hemo-be/src/shared/lib/errors/mark"
	"github.com/guregu/dynamo"
)

const (
	UsersTable       = "Users"
	EmailClaimsTable = "UserEmails"

	idKey    = "id"
	emailKey = "email"

	userExistsCondition     = "attribute_exists(" + idKey + ")"
	newUserCondition        = "attribute_not_exists(" + idKey + ")"
	emailUnclaimedCondition = "attribute_not_exists(" + emailKey + ")"
)

type DB struct {
	dynamoDB dynamolib.DynamoDBWrapper
}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper) DB {
	return DB{
		dynamoDB: dynamoDB,
	}
}

// CreateUser claims the email first and only then writes the user row.
// The claim is the store-level uniqueness constraint: a concurrent
// registration for the same address loses the conditional put instead of
// slipping past a read-then-write check.
func (d DB) CreateUser(ctx context.Context, newUser userentity.User) error {
	if newUser.ID == "" {
		err := errors.New("User ID is empty")
		return mark.Wrap(err, DefaultErrorMark, "No ID provided to create user")
	}

	claim := emailClaim{
		Email:  newUser.Email,
		UserID: newUser.ID,
	}

	err := d.dynamoDB.Table(EmailClaimsTable).
		Put(claim).
		If(emailUnclaimedCondition).
		RunWithContext(ctx)

	if err != nil {
		if conditionalCheckFailed(err) {
			return mark.Wrap(err,
				EmailExistsMark,
				"Cannot create: A user with this email already exists")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to claim the email for the new user")
	}

	err = d.dynamoDB.Table(UsersTable).
		Put(fromEntity(newUser)).
		If(newUserCondition).
		RunWithContext(ctx)

	if err != nil {
		d.releaseClaim(ctx, newUser.Email)
		return mark.Wrap(err, DefaultErrorMark, "Failed to put user into DB")
	}

	return nil
}

func (d DB) GetUser(ctx context.Context, userID string) (userentity.User, error) {
	if userID == "" {
		err := errors.New("User ID is empty")
		return userentity.User{}, mark.Wrap(err, UserNotFoundMark, "No ID provided to fetch user")
	}

	value := dbUser{}
	err := d.dynamoDB.Table(UsersTable).
		Get(idKey, userID).
		Consistent(true).
		OneWithContext(ctx, &value)

	if err != nil {
		switch {
		case errors.Is(err, dynamo.ErrNotFound):
			return userentity.User{}, mark.Wrap(err, UserNotFoundMark, "User is not found")
		default:
			return userentity.User{}, mark.Wrap(err, DefaultErrorMark, "Failed to fetch user")
		}
	}

	return value.toEntity(), nil
}

// GetUserIDByEmail resolves an email to a user ID through the claims table.
func (d DB) GetUserIDByEmail(ctx context.Context, email string) (string, error) {
	claim := emailClaim{}
	err := d.dynamoDB.Table(EmailClaimsTable).
		Get(emailKey, email).
		Consistent(true).
		OneWithContext(ctx, &claim)

	if err != nil {
		switch {
		case errors.Is(err, dynamo.ErrNotFound):
			return "", mark.Wrap(err, UserNotFoundMark, "No user holds this email")
		default:
			return "", mark.Wrap(err, DefaultErrorMark, "Failed to look up the email claim")
		}
	}

	return claim.UserID, nil
}

func (d DB) ListUsers(ctx context.Context) ([]userentity.User, error) {
	values := []dbUser{}
	err := d.dynamoDB.Table(UsersTable).
		Scan().
		AllWithContext(ctx, &values)

	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to scan users")
	}

	users := []userentity.User{}
	for _, value := range values {
		users = append(users, value.toEntity())
	}

	return users, nil
}

// MarkVerified flips the verified flag. The update is conditional on the
// user row still existing - redemption for a deleted account reports
// UserNotFoundMark instead of resurrecting the row.
func (d DB) MarkVerified(ctx context.Context, userID string) error {
	err := d.dynamoDB.Table(UsersTable).
		Update(idKey, userID).
		Set("verified", true).
		If(userExistsCondition).
		RunWithContext(ctx)

	if err != nil {
		if conditionalCheckFailed(err) {
			return mark.Wrap(err, UserNotFoundMark, "Cannot verify: User of this ID cannot be found")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to mark the user verified")
	}

	return nil
}

func (d DB) SetProfile(ctx context.Context, userID string, profile userentity.Profile) error {
	update := d.dynamoDB.Table(UsersTable).
		Update(idKey, userID).
		Set("dob", profile.DateOfBirth).
		Set("location", profile.Location).
		Set("weight", profile.Weight).
		Set("gender", profile.Gender).
		Set("blood_type", profile.BloodType).
		Set("phone", profile.Phone).
		If(userExistsCondition)

	return d.runUserUpdate(ctx, update, "Failed to set the user profile")
}

func (d DB) EditProfile(ctx context.Context, userID string, location string, weight string, phone string) error {
	update := d.dynamoDB.Table(UsersTable).
		Update(idKey, userID).
		Set("location", location).
		Set("weight", weight).
		Set("phone", phone).
		If(userExistsCondition)

	return d.runUserUpdate(ctx, update, "Failed to edit the user profile")
}

func (d DB) SetPasswordHash(ctx context.Context, userID string, passwordHash string) error {
	update := d.dynamoDB.Table(UsersTable).
		Update(idKey, userID).
		Set("password_hash", passwordHash).
		If(userExistsCondition)

	return d.runUserUpdate(ctx, update, "Failed to store the new password hash")
}

func (d DB) SetSessionToken(ctx context.Context, userID string, sessionToken string) error {
	update := d.dynamoDB.Table(UsersTable).
		Update(idKey, userID).
		Set("session_token", sessionToken).
		If(userExistsCondition)

	return d.runUserUpdate(ctx, update, "Failed to store the session token")
}

// DeleteUser removes the user row and releases the email claim so the
// address can be registered again.
func (d DB) DeleteUser(ctx context.Context, userID string) (userentity.User, error) {
	if userID == "" {
		err := errors.New("User ID is empty")
		return userentity.User{}, mark.Wrap(err, UserNotFoundMark, "No ID provided to delete user")
	}

	oldValue := dbUser{}
	err := d.dynamoDB.Table(UsersTable).
		Delete(idKey, userID).
		If(userExistsCondition).
		OldValueWithContext(ctx, &oldValue)

	if err != nil {
		switch {
		case conditionalCheckFailed(err), errors.Is(err, dynamo.ErrNotFound):
			return userentity.User{}, mark.Wrap(err, UserNotFoundMark, "Failed to find user to delete")
		default:
			return userentity.User{}, mark.Wrap(err, DefaultErrorMark, "Failed to delete user")
		}
	}

	d.releaseClaim(ctx, oldValue.Email)

	return oldValue.toEntity(), nil
}

func (d DB) runUserUpdate(ctx context.Context, update *dynamo.Update, failureMsg string) error {
	err := update.RunWithContext(ctx)
	if err != nil {
		if conditionalCheckFailed(err) {
			return mark.Wrap(err, UserNotFoundMark, "User of this ID cannot be found")
		}

		return mark.Wrap(err, DefaultErrorMark, failureMsg)
	}

	return nil
}

func (d DB) releaseClaim(ctx context.Context, email string) {
	if email == "" {
		return
	}

	err := d.dynamoDB.Table(EmailClaimsTable).
		Delete(emailKey, email).
		RunWithContext(ctx)

	if err != nil {
		// the user row is already gone (or was never written) - an
		// orphaned claim only blocks re-registration, so log loudly
		// rather than failing the whole operation
		log.WithError(err).
			WithField("email", email).
			Error("Failed to release the email claim")
	}
}

func conditionalCheckFailed(err error) bool {
	var conditionalErr *dynamodb.ConditionalCheckFailedException
	return errors.As(err, &conditionalErr)
}
