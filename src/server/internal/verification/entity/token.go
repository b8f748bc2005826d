package verificationentity

// Token is a pending one-time email confirmation. The string is the
// redemption key; it is meaningless once the referenced user is verified
// or deleted, and the record is removed on redemption.
type Token struct {
	Token  string
	UserID string
}
