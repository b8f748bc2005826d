package userstorage

import (
	userentity "github.com/dev334/hemo-be/src/server/internal/user/entity"
)

type dbUser struct {
	ID           string `dynamo:"id,hash"`
	Name         string `dynamo:"username"`
	Email        string `dynamo:"email"`
	PasswordHash string `dynamo:"password_hash"`
	Verified     bool   `dynamo:"verified"`
	DateOfBirth  string `dynamo:"dob,omitempty"`
	Location     string `dynamo:"location,omitempty"`
	Weight       string `dynamo:"weight,omitempty"`
	Gender       string `dynamo:"gender,omitempty"`
	BloodType    string `dynamo:"blood_type,omitempty"`
	Phone        string `dynamo:"phone,omitempty"`
	SessionToken string `dynamo:"session_token,omitempty"`
}

// emailClaim items make email uniqueness a key-level constraint - the claim
// is written with a conditional put before the user row exists, so two
// racing registrations can never both win the same address
type emailClaim struct {
	Email  string `dynamo:"email,hash"`
	UserID string `dynamo:"user_id"`
}

func fromEntity(user userentity.User) dbUser {
	return dbUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Verified:     user.Verified,
		DateOfBirth:  user.Profile.DateOfBirth,
		Location:     user.Profile.Location,
		Weight:       user.Profile.Weight,
		Gender:       user.Profile.Gender,
		BloodType:    user.Profile.BloodType,
		Phone:        user.Profile.Phone,
		SessionToken: user.SessionToken,
	}
}

func (d dbUser) toEntity() userentity.User {
	return userentity.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Verified:     d.Verified,
		Profile: userentity.Profile{
			DateOfBirth: d.DateOfBirth,
			Location:    d.Location,
			Weight:      d.Weight,
			Gender:      d.Gender,
			BloodType:   d.BloodType,
			Phone:       d.Phone,
		},
		SessionToken: d.SessionToken,
	}
}
