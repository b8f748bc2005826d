package userusecase

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	"github.com/dev334/hemo-be/src/server/internal/errors/api"
	"github.com/dev334/hemo-be/src/server/internal/errors/auth"
	userentity "github.com/dev334/hemo-be/src/server/internal/user/entity"
	usererrors "github.com/dev334/hemo-be/src/server/internal/user/errors"
	userstorage "github.com/dev334/hemo-be/src/server/internal/user/storage"
	verificationentity "github.com/dev334/hemo-be/src/server/internal/verification/entity"
	verificationerrors "github.com/dev334/hemo-be/src/server/internal/verification/errors"
	verificationstorage "github.com/dev334/hemo-be/src/server/internal/verification/storage"
	"github.com/dev334/hemo-be/src/shared/lib/mailer"
	"github.com/dev334/hemo-be/src/shared/lib/password"
	"github.com/dev334/hemo-be/src/shared/lib/rabbitmq"
	"github.com/dev334/hemo-be/src/shared/lib/token"
	"github.com/google/uuid"
)

type Usecase struct {
	db            userstorage.DB
	verifications verificationstorage.DB
	mailer        mailer.Mailer
	signer        token.Signer
	publisher     rabbitmq.Publisher
	publicURL     string
}

func NewUsecase(
	db userstorage.DB,
	verifications verificationstorage.DB,
	accountMailer mailer.Mailer,
	signer token.Signer,
	publisher rabbitmq.Publisher,
	publicURL string,
) Usecase {
	return Usecase{
		db:            db,
		verifications: verifications,
		mailer:        accountMailer,
		signer:        signer,
		publisher:     publisher,
		publicURL:     publicURL,
	}
}

// Register creates an unverified user and mails out the confirmation link.
// If the mail dispatch fails the user row deliberately stays behind
// unverified - whether to compensate is still an open product call, so the
// failure is surfaced and logged instead of silently rolled back.
func (u Usecase) Register(ctx context.Context, name string, email string, plaintext string) (userentity.User, *api.Error) {
	passwordHash, err := password.Hash(plaintext)
	if err != nil {
		return userentity.User{}, api.CommitError(err,
			api.DefaultErrorCode,
			"Your password could not be processed. Please try again")
	}

	newUser := userentity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Verified:     false,
	}

	if err := u.db.CreateUser(ctx, newUser); err != nil {
		switch {
		case markers.Is(err, userstorage.EmailExistsMark):
			return userentity.User{}, api.CommitError(err,
				usererrors.ExistingEmailCode,
				"An account with this email already exists")
		default:
			return userentity.User{}, api.CommitError(err,
				api.DefaultErrorCode,
				"The account could not be created")
		}
	}

	// random half first, user id appended - collision resistant and
	// traceable back to the account it was minted for
	tokenString := uuid.NewString() + newUser.ID
	verificationURL := fmt.Sprintf("%s/verify/%s", u.publicURL, tokenString)

	htmlBody, err := mailer.RenderVerification(newUser.Name, verificationURL)
	if err != nil {
		return userentity.User{}, api.CommitError(err,
			api.DefaultErrorCode,
			"The verification email could not be prepared")
	}

	if err := u.mailer.Send(ctx, newUser.Email, mailer.VerificationSubject, htmlBody); err != nil {
		log.WithError(err).
			WithField("user_id", newUser.ID).
			Warn("Verification email failed, unverified user left behind")

		return userentity.User{}, api.CommitError(err,
			usererrors.MailSendFailedCode,
			"The account was created but the verification email could not be sent")
	}

	newToken := verificationentity.Token{
		Token:  tokenString,
		UserID: newUser.ID,
	}

	if err := u.verifications.CreateToken(ctx, newToken); err != nil {
		return userentity.User{}, api.CommitError(err,
			api.DefaultErrorCode,
			"The verification could not be recorded. Please register again")
	}

	u.publishEvent(rabbitmq.UserRegisteredEvent, newUser.ID, newUser.Email)

	return newUser, nil
}

// Verify redeems a one-time token. The second return value reports the
// stale case: the token was valid but its user row no longer matched,
// which answers "already verified" rather than an error.
func (u Usecase) Verify(ctx context.Context, tokenString string) (bool, *api.Error) {
	pending, err := u.verifications.GetToken(ctx, tokenString)
	if err != nil {
		switch {
		case markers.Is(err, verificationstorage.TokenNotFoundMark):
			return false, api.CommitError(err,
				verificationerrors.TokenNotFoundCode,
				"This verification link is not valid")
		default:
			return false, api.CommitError(err,
				api.DefaultErrorCode,
				"The verification could not be looked up")
		}
	}

	alreadyVerified := false

	if err := u.db.MarkVerified(ctx, pending.UserID); err != nil {
		if !markers.Is(err, userstorage.UserNotFoundMark) {
			return false, api.CommitError(err,
				api.DefaultErrorCode,
				"The account could not be verified")
		}

		alreadyVerified = true
	}

	// single use: the token goes away whether or not the update matched
	if err := u.verifications.DeleteToken(ctx, tokenString); err != nil {
		return false, api.CommitError(err,
			api.DefaultErrorCode,
			"The verification could not be completed")
	}

	if !alreadyVerified {
		u.publishEvent(rabbitmq.UserVerifiedEvent, pending.UserID, "")
	}

	return alreadyVerified, nil
}

// Login checks the verified flag before the password so that an unverified
// account is told to confirm its email even when the credentials are right.
func (u Usecase) Login(ctx context.Context, email string, plaintext string, sessionToken string) (userentity.User, string, *api.Error) {
	userID, err := u.db.GetUserIDByEmail(ctx, email)
	if err != nil {
		return userentity.User{}, "", u.userFetchError(err)
	}

	user, err := u.db.GetUser(ctx, userID)
	if err != nil {
		return userentity.User{}, "", u.userFetchError(err)
	}

	if !user.Verified {
		err := errors.New("User not verified")
		return userentity.User{}, "", api.CommitError(err,
			auth.UnverifiedAccountCode,
			"This email hasn't been verified yet. Please confirm your account first")
	}

	if !password.Compare(plaintext, user.PasswordHash) {
		err := errors.New("Password comparison failed")
		return userentity.User{}, "", api.CommitError(err,
			auth.BadCredentialsCode,
			"The email or password is incorrect")
	}

	if sessionToken != "" {
		// best effort - a lost session label never blocks a login
		if err := u.db.SetSessionToken(ctx, user.ID, sessionToken); err != nil {
			log.WithError(err).
				WithField("user_id", user.ID).
				Warn("Failed to save the session token label")
		} else {
			user.SessionToken = sessionToken
		}
	}

	bearerToken, err := u.signer.Sign(user.ID)
	if err != nil {
		return userentity.User{}, "", api.CommitError(err,
			api.DefaultErrorCode,
			"The login token could not be issued")
	}

	return user, bearerToken, nil
}

func (u Usecase) CreateProfile(ctx context.Context, userID string, profile userentity.Profile) *api.Error {
	if err := u.db.SetProfile(ctx, userID, profile); err != nil {
		return u.userMutationError(err, "The profile could not be created")
	}

	return nil
}

func (u Usecase) EditProfile(ctx context.Context, userID string, location string, weight string, phone string) *api.Error {
	if err := u.db.EditProfile(ctx, userID, location, weight, phone); err != nil {
		return u.userMutationError(err, "The profile could not be updated")
	}

	return nil
}

// ChangePassword verifies the old password before hashing the new one.
// bcrypt draws a fresh salt for the new hash.
func (u Usecase) ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) *api.Error {
	user, err := u.db.GetUser(ctx, userID)
	if err != nil {
		return u.userFetchError(err)
	}

	if !password.Compare(oldPassword, user.PasswordHash) {
		err := errors.New("Old password comparison failed")
		return api.CommitError(err,
			auth.BadCredentialsCode,
			"The current password is incorrect")
	}

	newHash, err := password.Hash(newPassword)
	if err != nil {
		return api.CommitError(err,
			api.DefaultErrorCode,
			"Your password could not be processed. Please try again")
	}

	if err := u.db.SetPasswordHash(ctx, user.ID, newHash); err != nil {
		return u.userMutationError(err, "The password could not be changed")
	}

	return nil
}

func (u Usecase) DeleteAccount(ctx context.Context, userID string) *api.Error {
	deletedUser, err := u.db.DeleteUser(ctx, userID)
	if err != nil {
		return u.userFetchError(err)
	}

	u.publishEvent(rabbitmq.UserDeletedEvent, deletedUser.ID, deletedUser.Email)

	return nil
}

func (u Usecase) GetUser(ctx context.Context, userID string) (userentity.User, *api.Error) {
	user, err := u.db.GetUser(ctx, userID)
	if err != nil {
		return userentity.User{}, u.userFetchError(err)
	}

	return user, nil
}

func (u Usecase) ListUsers(ctx context.Context) ([]userentity.User, *api.Error) {
	users, err := u.db.ListUsers(ctx)
	if err != nil {
		return nil, api.CommitError(err,
			api.DefaultErrorCode,
			"Users could not be listed")
	}

	return users, nil
}

func (u Usecase) userFetchError(err error) *api.Error {
	switch {
	case markers.Is(err, userstorage.UserNotFoundMark):
		return api.CommitError(err,
			usererrors.UserNotFoundCode,
			"An account could not be found for this user")
	default:
		return api.CommitError(err,
			api.DefaultErrorCode,
			"User information could not be retrieved")
	}
}

func (u Usecase) userMutationError(err error, defaultMsg string) *api.Error {
	switch {
	case markers.Is(err, userstorage.UserNotFoundMark):
		return api.CommitError(err,
			usererrors.UserNotFoundCode,
			"An account could not be found for this user")
	default:
		return api.CommitError(err, api.DefaultErrorCode, defaultMsg)
	}
}

func (u Usecase) publishEvent(event string, userID string, email string) {
	if u.publisher == nil {
		return
	}

	if err := rabbitmq.PublishAccountEvent(u.publisher, event, userID, email); err != nil {
		log.WithError(err).
			WithField("event", event).
			WithField("user_id", userID).
			Error("Failed to publish the account event")
	}
}
