package accounts

// Account is the identity root: every exercise, workout and body entry
// belongs to exactly one account.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// bcrypt hash, never the plaintext
	PasswordHash string `json:"-"`
}
