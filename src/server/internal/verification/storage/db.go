package verificationstorage

import (
	"context"

	"github.com/cockroachdb/errors"
	verificationentity "github.com/dev334/hemo-be/src/server/internal/verification/entity"
	dynamolib "github.com/dev334/hemo-be/src/shared/lib/dynamo"
	"github.com/dev334/hemo-be/src/shared/lib/errors/mark"
	"github.com/guregu/dynamo"
)

const (
	VerificationsTable = "UserVerifications"

	tokenKey = "token"
)

type dbToken struct {
	Token  string `dynamo:"token,hash"`
	UserID string `dynamo:"user_id"`
}

type DB struct {
	dynamoDB dynamolib.DynamoDBWrapper
}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper) DB {
	return DB{
		dynamoDB: dynamoDB,
	}
}

func (d DB) CreateToken(ctx context.Context, token verificationentity.Token) error {
	if token.Token == "" {
		err := errors.New("Verification token is empty")
		return mark.Wrap(err, DefaultErrorMark, "No token string provided to create verification")
	}

	value := dbToken{
		Token:  token.Token,
		UserID: token.UserID,
	}

	err := d.dynamoDB.Table(VerificationsTable).
		Put(value).
		RunWithContext(ctx)

	if err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to put verification token into DB")
	}

	return nil
}

func (d DB) GetToken(ctx context.Context, tokenString string) (verificationentity.Token, error) {
	if tokenString == "" {
		err := errors.New("Verification token is empty")
		return verificationentity.Token{}, mark.Wrap(err, TokenNotFoundMark, "No token string provided to fetch verification")
	}

	value := dbToken{}
	err := d.dynamoDB.Table(VerificationsTable).
		Get(tokenKey, tokenString).
		Consistent(true).
		OneWithContext(ctx, &value)

	if err != nil {
		switch {
		case errors.Is(err, dynamo.ErrNotFound):
			return verificationentity.Token{}, mark.Wrap(err, TokenNotFoundMark, "Verification for this token couldn't be found")
		default:
			return verificationentity.Token{}, mark.Wrap(err, DefaultErrorMark, "Failed to fetch verification token")
		}
	}

	return verificationentity.Token{
		Token:  value.Token,
		UserID: value.UserID,
	}, nil
}

// DeleteToken is unconditional - redemption removes the record whether or
// not the user update matched, which is what makes tokens single use.
func (d DB) DeleteToken(ctx context.Context, tokenString string) error {
	err := d.dynamoDB.Table(VerificationsTable).
		Delete(tokenKey, tokenString).
		RunWithContext(ctx)

	if err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to delete verification token")
	}

	return nil
}
