package userentity

// User is the full credential record, password hash included. It never
// leaves the service as-is - outward responses go through the gateway's
// hash-free view.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Verified     bool
	Profile      Profile

	// opaque client-supplied label saved on login, not security relevant
	SessionToken string
}

// Profile holds the optional fields a user fills in after registration.
type Profile struct {
	DateOfBirth string
	Location    string
	Weight      string
	Gender      string
	BloodType   string
	Phone       string
}
