package usergateway

import (
	userentity "github.com/dev334/hemo-be/src/server/internal/user/entity"
)

type RegisterJSON struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginJSON struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	// optional client-supplied session label, stored best effort
	Token string `json:"token"`
}

type CreateProfileJSON struct {
	UserID      string `json:"user_id" validate:"required"`
	DateOfBirth string `json:"dob"`
	Location    string `json:"location"`
	Weight      string `json:"weight"`
	Gender      string `json:"gender"`
	BloodType   string `json:"blood"`
	Phone       string `json:"phone"`
}

type EditProfileJSON struct {
	UserID   string `json:"user_id" validate:"required"`
	Location string `json:"location"`
	Weight   string `json:"weight"`
	Phone    string `json:"phone"`
}

type ChangePasswordJSON struct {
	UserID      string `json:"user_id" validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UserJSON is the outward view of a user. The password hash stays out of
// it on purpose.
type UserJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Verified    bool   `json:"verified"`
	DateOfBirth string `json:"dob,omitempty"`
	Location    string `json:"location,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Gender      string `json:"gender,omitempty"`
	BloodType   string `json:"blood,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

func NewUserJSON(user userentity.User) UserJSON {
	return UserJSON{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Verified:    user.Verified,
		DateOfBirth: user.Profile.DateOfBirth,
		Location:    user.Profile.Location,
		Weight:      user.Profile.Weight,
		Gender:      user.Profile.Gender,
		BloodType:   user.Profile.BloodType,
		Phone:       user.Profile.Phone,
	}
}

type LoginResponseJSON struct {
	Token string   `json:"token"`
	User  UserJSON `json:"user"`
}

type MessageJSON struct {
	Message string `json:"message"`
}
